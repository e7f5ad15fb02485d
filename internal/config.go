package internal

import (
	"fmt"
	"strings"
	"time"

	"roundtable/domain"
)

type Config struct {
	BadgerFilepath  string        `env:"BADGER_FILEPATH,required=true"`
	BlugeFilepath   string        `env:"BLUGE_FILEPATH,required=true"`
	LogLevel        string        `env:"LOG_LEVEL,required=true"`
	RoundPacing     time.Duration `env:"ROUND_PACING,required=true"`
	AskTimeout      time.Duration `env:"ASK_TIMEOUT,required=true"`
	SinkTimeout     time.Duration `env:"SINK_TIMEOUT,required=true"`
	CharReplacement string        `env:"CHARACTER_REPLACEMENT,required=true"`
	Participants    string        `env:"PARTICIPANTS,required=true"`
	LimitMessages   *int          `env:"LIMIT_MESSAGES"`
	ProviderDelay   time.Duration `env:"PROVIDER_DELAY"`
	DebugPort       int           `env:"DEBUG_PORT"`
}

func CharacterRune(str string) (rune, error) {
	r := []rune(str)
	if len(r) != 1 {
		return 0, fmt.Errorf(
			"CHARACTER_REPLACEMENT must be a single character, got %q",
			str,
		)
	}
	return r[0], nil
}

// ParseParticipants reads the roster definition
// "name:color:model,name:color:model" into runtime participants.
func ParseParticipants(spec string) ([]domain.Participant, error) {
	var out []domain.Participant
	for _, entry := range strings.Split(spec, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		parts := strings.Split(entry, ":")
		if len(parts) != 3 {
			return nil, fmt.Errorf("PARTICIPANTS entry %q must be name:color:model", entry)
		}
		name := strings.TrimSpace(parts[0])
		out = append(out, domain.Participant{
			Handle: domain.Handle(strings.ToLower(name)),
			Meta: domain.DisplayMeta{
				Name:    name,
				Color:   strings.TrimSpace(parts[1]),
				ModelID: strings.TrimSpace(parts[2]),
			},
		})
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("PARTICIPANTS is empty")
	}
	return out, nil
}
