package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Registry struct {
	reg             *prometheus.Registry
	GeocodeHits     prometheus.Counter
	GeocodeMisses   prometheus.Counter
	GeocodeFailures prometheus.Counter
	OrdersPlaced    prometheus.Counter
}

func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()

	r := &Registry{
		reg: reg,
		GeocodeHits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "foodcart_geocode_cache_hits_total",
			Help: "Address resolutions served from the geopoint cache.",
		}),
		GeocodeMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "foodcart_geocode_cache_misses_total",
			Help: "Address resolutions that called the external provider.",
		}),
		GeocodeFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "foodcart_geocode_failures_total",
			Help: "Failed external geocode calls.",
		}),
		OrdersPlaced: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "foodcart_orders_placed_total",
			Help: "Orders accepted and persisted.",
		}),
	}

	reg.MustRegister(r.GeocodeHits, r.GeocodeMisses, r.GeocodeFailures, r.OrdersPlaced)
	return r
}

func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{})
}
