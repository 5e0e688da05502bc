package utils

import (
	"lingo/database"
	orderModels "lingo/models/order"
	"log"

	"github.com/robfig/cron/v3"
)

// InitializeFulfillmentReconciler sets up the scheduler that re-runs the
// fulfillment fan-out for confirmed orders whose subordinate writes did not
// all apply on the capture request
func InitializeFulfillmentReconciler() {
	log.Println("[RECONCILER] Initializing fulfillment reconciler...")

	c := cron.New()

	c.AddFunc("@every 5m", func() {
		ReconcilePendingFulfillments()
	})

	c.Start()
	log.Println("[RECONCILER] Fulfillment reconciler started - runs every 5 minutes")
}

// ReconcilePendingFulfillments finds confirmed orders that are not fully
// fulfilled and drives them to convergence. Safe to call at any time; every
// underlying step is idempotent.
func ReconcilePendingFulfillments() {
	db := database.Database.Db

	var orders []orderModels.Order
	if err := db.Preload("Lines").
		Where("order_status = ? AND fulfillment_status <> ?", orderModels.OrderStatusConfirmed, orderModels.FulfillmentComplete).
		Find(&orders).Error; err != nil {
		log.Printf("[RECONCILER] Error fetching unfulfilled orders: %v", err)
		return
	}

	if len(orders) == 0 {
		return
	}

	log.Printf("[RECONCILER] Found %d orders awaiting fulfillment", len(orders))

	for i := range orders {
		ord := &orders[i]
		if !FinalizeOrderFulfillment(db, ord) {
			log.Printf("[RECONCILER] Order %d still partial, will retry on next run", ord.ID)
			continue
		}
		if err := db.Model(ord).Update("fulfillment_status", orderModels.FulfillmentComplete).Error; err != nil {
			log.Printf("[RECONCILER] Error marking order %d complete: %v", ord.ID, err)
			continue
		}
		log.Printf("[RECONCILER] Order %d fulfillment converged", ord.ID)
	}
}
