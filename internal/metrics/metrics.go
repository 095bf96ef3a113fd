package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the medal service.
type Metrics struct {
	medalsRegistered  prometheus.Counter
	medalsDeleted     prometheus.Counter
	searches          prometheus.Counter
	searchResultSize  prometheus.Histogram
	reportsSubmitted  prometheus.Counter
	duplicateReports  prometheus.Counter
	medalsInvalidated prometheus.Counter
	usersBanned       prometheus.Counter
	collections       prometheus.Counter
	uncollections     prometheus.Counter
	cacheHits         prometheus.Counter
	cacheMisses       prometheus.Counter
}

// New creates and registers all medal service metrics.
func New() *Metrics {
	return &Metrics{
		medalsRegistered: promauto.NewCounter(prometheus.CounterOpts{
			Name: "medals_registered_total",
			Help: "Total number of medals registered",
		}),
		medalsDeleted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "medals_deleted_total",
			Help: "Total number of medals hard-deleted by their owners",
		}),
		searches: promauto.NewCounter(prometheus.CounterOpts{
			Name: "medal_searches_total",
			Help: "Total number of radius searches",
		}),
		searchResultSize: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "medal_search_result_size",
			Help:    "Number of medals returned per radius search",
			Buckets: []float64{0, 1, 5, 10, 50, 100, 500, 1000},
		}),
		reportsSubmitted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "medal_reports_total",
			Help: "Total number of reports accepted",
		}),
		duplicateReports: promauto.NewCounter(prometheus.CounterOpts{
			Name: "medal_reports_duplicate_total",
			Help: "Total number of rejected duplicate reports",
		}),
		medalsInvalidated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "medals_invalidated_total",
			Help: "Total number of medals invalidated by moderation",
		}),
		usersBanned: promauto.NewCounter(prometheus.CounterOpts{
			Name: "users_banned_total",
			Help: "Total number of users banned by moderation",
		}),
		collections: promauto.NewCounter(prometheus.CounterOpts{
			Name: "medal_collections_total",
			Help: "Total number of medals collected",
		}),
		uncollections: promauto.NewCounter(prometheus.CounterOpts{
			Name: "medal_uncollections_total",
			Help: "Total number of collections withdrawn",
		}),
		cacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "search_cache_hits_total",
			Help: "Total number of search cache hits",
		}),
		cacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "search_cache_misses_total",
			Help: "Total number of search cache misses",
		}),
	}
}

func (m *Metrics) IncMedalsRegistered()  { m.medalsRegistered.Inc() }
func (m *Metrics) IncMedalsDeleted()     { m.medalsDeleted.Inc() }
func (m *Metrics) IncReportsSubmitted()  { m.reportsSubmitted.Inc() }
func (m *Metrics) IncDuplicateReports()  { m.duplicateReports.Inc() }
func (m *Metrics) IncMedalsInvalidated() { m.medalsInvalidated.Inc() }
func (m *Metrics) IncUsersBanned()       { m.usersBanned.Inc() }
func (m *Metrics) IncCollections()       { m.collections.Inc() }
func (m *Metrics) IncUncollections()     { m.uncollections.Inc() }
func (m *Metrics) IncCacheHits()         { m.cacheHits.Inc() }
func (m *Metrics) IncCacheMisses()       { m.cacheMisses.Inc() }

// ObserveSearch records one radius search and its result size.
func (m *Metrics) ObserveSearch(resultCount int) {
	m.searches.Inc()
	m.searchResultSize.Observe(float64(resultCount))
}
