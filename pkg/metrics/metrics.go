// Package metrics expone los contadores Prometheus del ciclo de producción.
// Se registran una sola vez en el registry por defecto; el endpoint /metrics
// los sirve vía promhttp.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// CutsConfirmed cortes confirmados, etiquetados por resultado.
	CutsConfirmed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "produccion_cuts_total",
			Help: "Total de confirmaciones de corte procesadas",
		},
		[]string{"result"},
	)

	// Distributions distribuciones de paquetes a costura, etiquetadas por resultado.
	Distributions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "produccion_distributions_total",
			Help: "Total de distribuciones de paquetes procesadas",
		},
		[]string{"result"},
	)

	// SplitsFinished cierres de paquete, etiquetados por resultado.
	SplitsFinished = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "produccion_splits_finished_total",
			Help: "Total de cierres de paquete procesados",
		},
		[]string{"result"},
	)

	// StockRejections cortes rechazados por tela insuficiente.
	StockRejections = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "produccion_stock_rejections_total",
			Help: "Total de cortes rechazados por stock de tela insuficiente",
		},
	)

	// PieceRejections distribuciones rechazadas por saldo de piezas insuficiente.
	PieceRejections = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "produccion_piece_rejections_total",
			Help: "Total de distribuciones rechazadas por saldo insuficiente",
		},
	)
)

// Etiquetas de resultado.
const (
	ResultOK       = "ok"
	ResultRejected = "rejected"
	ResultError    = "error"
)

// Register registra todas las métricas en el registry por defecto.
// Llamar una sola vez desde main.
func Register() {
	prometheus.MustRegister(CutsConfirmed)
	prometheus.MustRegister(Distributions)
	prometheus.MustRegister(SplitsFinished)
	prometheus.MustRegister(StockRejections)
	prometheus.MustRegister(PieceRejections)
}
