package metrics

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Contadores del motor de inventario.
var (
	ReceiptsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "inventory_receipts_total",
		Help: "Recepciones de stock procesadas, por resultado.",
	}, []string{"result"})

	TransfersTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "inventory_transfers_total",
		Help: "Traslados bodega-vehículo procesados, por resultado.",
	}, []string{"result"})
)

// Etiquetas de resultado.
const (
	ResultOK    = "ok"
	ResultError = "error"
)

// Server sirve /metrics en su propia dirección, separado de la API.
type Server struct {
	srv *http.Server
}

// NewServer construye el servidor de métricas.
func NewServer(addr string) *Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	return &Server{srv: &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}}
}

// Start bloquea sirviendo métricas hasta Shutdown.
func (s *Server) Start() error {
	return s.srv.ListenAndServe()
}

// Shutdown apaga el servidor de métricas.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
