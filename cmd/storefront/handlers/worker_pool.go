package handlers

import (
	"context"
	"sync"
	"time"
)

type Task struct {
	OrderID string
}

// WorkerPool drives payment reconciliation: each task asks the payment
// system for one order's settlement status and writes the result back.
// The ticker throttles outbound requests across all workers.
type WorkerPool struct {
	tasks       chan Task
	workerCount int
	throttle    *time.Ticker
	wg          *sync.WaitGroup
}

const bufSize = 100

func NewWorkerPool(workerCount, maxRequestsPerMinute int) *WorkerPool {
	interval := time.Minute / time.Duration(maxRequestsPerMinute)
	return &WorkerPool{
		tasks:       make(chan Task, bufSize),
		workerCount: workerCount,
		throttle:    time.NewTicker(interval),
		wg:          &sync.WaitGroup{},
	}
}

func (wp *WorkerPool) Start(con *Controller) {
	for i := 0; i < wp.workerCount; i++ {
		go wp.worker(con)
	}
}

func (wp *WorkerPool) worker(con *Controller) {
	for task := range wp.tasks {
		<-wp.throttle.C

		resp, err := con.paymentService.GetPaymentStatus(task.OrderID)
		if err != nil {
			con.sugar.Errorf("Error checking payment for order %s: %v", task.OrderID, err)
			wp.wg.Done()
			continue
		}

		switch resp.Status {
		case "PAID":
			if err := con.storageService.UpdatePaymentStatus(task.OrderID, "PAID"); err != nil {
				con.sugar.Errorf("Error updating payment status for order %s: %v", task.OrderID, err)
				wp.wg.Done()
				continue
			}
			if err := con.storageService.UpdateOrderStatus(task.OrderID, "PROCESSING"); err != nil {
				con.sugar.Errorf("Error updating order status for order %s: %v", task.OrderID, err)
			}
			paymentsReconciled.Inc()
		case "FAILED":
			if err := con.storageService.UpdatePaymentStatus(task.OrderID, "FAILED"); err != nil {
				con.sugar.Errorf("Error updating payment status for order %s: %v", task.OrderID, err)
			}
			paymentsReconciled.Inc()
		}

		wp.wg.Done()
	}
}

func (wp *WorkerPool) AddTask(task Task) {
	wp.wg.Add(1)
	wp.tasks <- task
}

// RunPaymentSweep periodically enqueues orders whose payment is still
// pending. Blocks until the context is cancelled.
func (con *Controller) RunPaymentSweep(ctx context.Context) {
	interval := time.Duration(con.conf.SweepIntervalSec) * time.Second
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			con.sugar.Infoln("payment sweep stopped")
			return
		case <-ticker.C:
			ids, err := con.storageService.GetUnsettledOrders(bufSize / 2)
			if err != nil {
				con.sugar.Errorf("Error listing unsettled orders: %v", err)
				continue
			}
			for _, id := range ids {
				con.wp.AddTask(Task{OrderID: id})
			}
		}
	}
}
