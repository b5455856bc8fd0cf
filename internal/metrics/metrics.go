package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SchedulingOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "drivingschool_scheduling_operations_total",
			Help: "Total number of scheduling store operations",
		},
		[]string{"operation", "result"},
	)

	BookingsCreatedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "drivingschool_bookings_created_total",
			Help: "Total number of bookings created",
		},
		[]string{"created_by", "status"},
	)

	PersistenceWritesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "drivingschool_persistence_writes_total",
			Help: "Total number of collection writes to storage",
		},
		[]string{"collection", "status"},
	)

	NotificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "drivingschool_notifications_total",
			Help: "Total number of notification dispatch attempts",
		},
		[]string{"status"},
	)

	NotificationQueueLength = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "drivingschool_notification_queue_length",
			Help: "Current length of notification queue",
		},
	)

	StoreLoaded = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "drivingschool_store_loaded",
			Help: "1 when the scheduling store finished its initial load",
		},
	)
)

// RecordOperation записывает результат операции планировщика
func RecordOperation(operation string, err error) {
	result := "success"
	if err != nil {
		result = "error"
	}
	SchedulingOperationsTotal.WithLabelValues(operation, result).Inc()
}

// RecordBookingCreated записывает создание записи
func RecordBookingCreated(createdBy, status string) {
	BookingsCreatedTotal.WithLabelValues(createdBy, status).Inc()
}

// RecordPersistenceWrite записывает сохранение коллекции
func RecordPersistenceWrite(collection string, err error) {
	status := "success"
	if err != nil {
		status = "failed"
	}
	PersistenceWritesTotal.WithLabelValues(collection, status).Inc()
}

// RecordNotification записывает попытку отправки уведомления: sent, failed или dropped
func RecordNotification(status string) {
	NotificationsTotal.WithLabelValues(status).Inc()
}

// SetNotificationQueueLength обновляет длину очереди уведомлений
func SetNotificationQueueLength(n int) {
	NotificationQueueLength.Set(float64(n))
}

// SetStoreLoaded отмечает готовность планировщика
func SetStoreLoaded(loaded bool) {
	if loaded {
		StoreLoaded.Set(1)
		return
	}
	StoreLoaded.Set(0)
}
