// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package config

import (
	"github.com/caarlos0/env"
)

type Config struct {
	// combat resolution
	AccuracySpeedScale float64 `env:"ACCURACY_SPEED_SCALE"  envDefault:"0.1"   envDocs:"attacker speed is multiplied by this and added to move accuracy"`
	BaseCritChance     float64 `env:"BASE_CRIT_CHANCE"      envDefault:"0.05"  envDocs:"base probability of a critical hit before the luck bonus"`
	LuckCritScale      float64 `env:"LUCK_CRIT_SCALE"       envDefault:"0.002" envDocs:"attacker luck is multiplied by this and added to the crit chance"`
	CritMultiplier     float64 `env:"CRIT_MULTIPLIER"       envDefault:"1.5"   envDocs:"damage multiplier applied on a critical hit"`
	VarianceMin        float64 `env:"VARIANCE_MIN"          envDefault:"0.85"  envDocs:"lower bound of the uniform damage variance band"`
	VarianceMax        float64 `env:"VARIANCE_MAX"          envDefault:"1.15"  envDocs:"upper bound of the uniform damage variance band"`

	// matchmaking
	PairableRatingGap     int     `env:"PAIRABLE_RATING_GAP"      envDefault:"25" envDocs:"adjusted rating difference at or below which two queued players pair"`
	WaitWideningPerSecond float64 `env:"WAIT_WIDENING_PER_SECOND" envDefault:"2"  envDocs:"rating points the acceptable band widens per second of average wait"`
	QueueTickSecond       int     `env:"QUEUE_TICK_SECOND"        envDefault:"3"  envDocs:"interval of the periodic pairing pass"`

	// rating
	EloKFactor      int `env:"ELO_K_FACTOR"     envDefault:"32"  envDocs:"K factor used for ranked rating deltas"`
	LeaderboardSize int `env:"LEADERBOARD_SIZE" envDefault:"100" envDocs:"number of entries returned by the leaderboard"`

	// rewards
	WildCurrencyBase       int `env:"WILD_CURRENCY_BASE"        envDefault:"10" envDocs:"currency granted per opponent level for a wild battle win"`
	RankedCurrencyBase     int `env:"RANKED_CURRENCY_BASE"      envDefault:"50" envDocs:"flat currency granted for a ranked win"`
	RankedCurrencyPerPoint int `env:"RANKED_CURRENCY_PER_POINT" envDefault:"2"  envDocs:"additional currency per rating point gained in a ranked win"`
	XPBase                 int `env:"XP_BASE"                   envDefault:"25" envDocs:"experience granted per opponent level on a win, halved on a loss"`

	// session lifecycle
	TurnTimeoutSecond int `env:"TURN_TIMEOUT_SECOND" envDefault:"0" envDocs:"idle seconds before a ranked session auto-forfeits (0 disables the sweep)"`

	// process surface
	HTTPAddr            string `env:"HTTP_ADDR"             envDefault:":8080" envDocs:"listen address of the HTTP surface"`
	ZipkinEndpoint      string `env:"ZIPKIN_ENDPOINT"       envDefault:""      envDocs:"zipkin collector endpoint, empty disables trace export"`
	ElementTableJSON    string `env:"ELEMENT_TABLE_JSON"    envDefault:""      envDocs:"JSON effectiveness table overriding the built-in defaults"`
	CreatureCatalogJSON string `env:"CREATURE_CATALOG_JSON" envDefault:""      envDocs:"JSON creature catalog loaded by the in-memory collaborator"`
}

// Load parses the process environment into a Config.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
