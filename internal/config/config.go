package config

import (
	"fmt"
	"log"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

func init() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, falling back to system environment variables")
	}
}

// Config is the process configuration, parsed from the environment.
type Config struct {
	DiscordToken string `env:"DISCORD_TOKEN,required"`
	// Home channel. When set, messages elsewhere are ignored and
	// spontaneous behavior is posted here.
	ChannelID   string `env:"DISCORD_CHANNEL_ID"`
	StoragePath string `env:"STORAGE_PATH" envDefault:"data"`
	LogPath     string `env:"LOG_PATH" envDefault:"logs/noma.log"`

	GroqAPIKey string `env:"GROQ_API_KEY"`
	GroqModel  string `env:"GROQ_MODEL" envDefault:"llama-3.1-8b-instant"`

	// Timezone used for the day/night cycle and diary dates.
	Timezone string `env:"TIMEZONE" envDefault:"Europe/Rome"`

	Tunables Tunables
}

// Tunables groups the behavioral constants in one place so tests can
// shrink intervals and pin probabilities.
type Tunables struct {
	// Loneliness ramp: zero until LonelinessFloor of silence, 1.0 at
	// LonelinessCeil, linear in between.
	LonelinessFloor time.Duration `env:"LONELINESS_FLOOR" envDefault:"1h"`
	LonelinessCeil  time.Duration `env:"LONELINESS_CEIL" envDefault:"4h"`

	MoodHistoryCap     int `env:"MOOD_HISTORY_CAP" envDefault:"20"`
	RecentLearningsCap int `env:"RECENT_LEARNINGS_CAP" envDefault:"5"`

	// Wake hour is rolled in [WakeHourMin, WakeHourMax], sleep hour in
	// [SleepHourMin, SleepHourMax], once per day.
	WakeHourMin  int `env:"WAKE_HOUR_MIN" envDefault:"6"`
	WakeHourMax  int `env:"WAKE_HOUR_MAX" envDefault:"9"`
	SleepHourMin int `env:"SLEEP_HOUR_MIN" envDefault:"21"`
	SleepHourMax int `env:"SLEEP_HOUR_MAX" envDefault:"23"`

	CycleInterval       time.Duration `env:"CYCLE_INTERVAL" envDefault:"1h"`
	SpontaneousMin      time.Duration `env:"SPONTANEOUS_MIN" envDefault:"15m"`
	SpontaneousMax      time.Duration `env:"SPONTANEOUS_MAX" envDefault:"45m"`
	AutosaveInterval    time.Duration `env:"AUTOSAVE_INTERVAL" envDefault:"5m"`
	LonelinessThreshold float64       `env:"LONELINESS_THRESHOLD" envDefault:"0.7"`

	CreativeChance       float64 `env:"CREATIVE_CHANCE" envDefault:"0.2"`
	CreativeStudyChance  float64 `env:"CREATIVE_STUDY_CHANCE" envDefault:"0.2"`
	ResearchChance       float64 `env:"RESEARCH_CHANCE" envDefault:"0.2"`
	BedtimeReadingChance float64 `env:"BEDTIME_READING_CHANCE" envDefault:"0.2"`
	MoodDriftChance      float64 `env:"MOOD_DRIFT_CHANCE" envDefault:"0.3"`
	EmojiAskChance       float64 `env:"EMOJI_ASK_CHANCE" envDefault:"0.05"`
	ConceptsPerLevel     int     `env:"CONCEPTS_PER_LEVEL" envDefault:"50"`

	TeachPoints   int `env:"TEACH_POINTS" envDefault:"50"`
	MessagePoints int `env:"MESSAGE_POINTS" envDefault:"1"`

	BackupCount int `env:"BACKUP_COUNT" envDefault:"3"`
}

// New parses the environment into a Config.
func New() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := env.Parse(&cfg.Tunables); err != nil {
		return nil, fmt.Errorf("config tunables: %w", err)
	}
	return cfg, nil
}

// DefaultTunables returns the production tunables without touching the
// environment. Used by tests and as a base for overrides.
func DefaultTunables() Tunables {
	return Tunables{
		LonelinessFloor:      time.Hour,
		LonelinessCeil:       4 * time.Hour,
		MoodHistoryCap:       20,
		RecentLearningsCap:   5,
		WakeHourMin:          6,
		WakeHourMax:          9,
		SleepHourMin:         21,
		SleepHourMax:         23,
		CycleInterval:        time.Hour,
		SpontaneousMin:       15 * time.Minute,
		SpontaneousMax:       45 * time.Minute,
		AutosaveInterval:     5 * time.Minute,
		LonelinessThreshold:  0.7,
		CreativeChance:       0.2,
		CreativeStudyChance:  0.2,
		ResearchChance:       0.2,
		BedtimeReadingChance: 0.2,
		MoodDriftChance:      0.3,
		EmojiAskChance:       0.05,
		ConceptsPerLevel:     50,
		TeachPoints:          50,
		MessagePoints:        1,
		BackupCount:          3,
	}
}
