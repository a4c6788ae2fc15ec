package game

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	playersQueued = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "sportsball",
		Subsystem: "game",
		Name:      "players_queued",
		Help:      "Number of players currently waiting to enter the game.",
	})
	queueCapacity = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "sportsball",
		Subsystem: "game",
		Name:      "queue_capacity",
		Help:      "Current capacity of the player queue's backing arrays.",
	})
	queueResizes = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "sportsball",
		Subsystem: "game",
		Name:      "queue_resizes_total",
		Help:      "Number of times the player queue's backing arrays resized.",
	})
	turnsTaken = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "sportsball",
		Subsystem: "game",
		Name:      "turns_total",
		Help:      "Number of GO! turns taken.",
	})
)
