package model

import (
	"maps"
	"slices"
	"sort"
)

const (
	ResourcePath = "/dashboard/metricas"
	CacheKey     = "dashboard:metrics"
)

// Metrics are the business totals shown on the dashboard.
type Metrics struct {
	TotalCustomers         int64            `json:"totalClientes"`
	TotalReservations      int64            `json:"totalReservas"`
	TotalEquipment         int64            `json:"totalEquipos"`
	TotalDestinations      int64            `json:"totalDestinos"`
	PendingReservations    int64            `json:"reservasPendientes"`
	ConfirmedReservations  int64            `json:"reservasConfirmadas"`
	InProgressReservations int64            `json:"reservasEnProgreso"`
	FinishedReservations   int64            `json:"reservasFinalizadas"`
	CancelledReservations  int64            `json:"reservasCanceladas"`
	ReservationsByPlace    map[string]int64 `json:"reservasPorDestino"`
	CustomersByTier        map[string]int64 `json:"clientesPorNivelFidelizacion"`
}

type Count struct {
	Label string `json:"label"`
	Value int64  `json:"value"`
}

// TopDestinations returns up to limit destinations by reservation count, ties by name.
func (m Metrics) TopDestinations(limit int) []Count {
	names := slices.Collect(maps.Keys(m.ReservationsByPlace))

	sort.Slice(names, func(i, j int) bool {
		a, b := m.ReservationsByPlace[names[i]], m.ReservationsByPlace[names[j]]
		if a != b {
			return a > b
		}

		return names[i] < names[j]
	})

	if limit > 0 && len(names) > limit {
		names = names[:limit]
	}

	counts := make([]Count, 0, len(names))
	for _, name := range names {
		counts = append(counts, Count{Label: name, Value: m.ReservationsByPlace[name]})
	}

	return counts
}

// ActiveReservations counts the reservations that still hold equipment.
func (m Metrics) ActiveReservations() int64 {
	return m.PendingReservations + m.ConfirmedReservations + m.InProgressReservations
}

// Dashboard is the metrics screen.
type Dashboard struct {
	Metrics
	Active          int64   `json:"reservasActivas"`
	TopDestinations []Count `json:"destinosTop"`
	Cached          bool    `json:"cached"`
}

func NewDashboard(metrics Metrics, cached bool) Dashboard {
	return Dashboard{
		Metrics:         metrics,
		Active:          metrics.ActiveReservations(),
		TopDestinations: metrics.TopDestinations(5),
		Cached:          cached,
	}
}
