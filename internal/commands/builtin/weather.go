package builtin

import (
	"context"
	"fmt"
	"hash/fnv"
	"strings"

	"folioshell/pkg/foliotypes"
)

var conditions = []string{"Sunny", "Partly Cloudy", "Cloudy", "Light Rain", "Windy", "Clear"}

// WeatherCommand prints a made-up forecast. No weather service is queried; readings are derived
// from the city name so the same city always reports the same weather.
type WeatherCommand struct{}

// Name returns the command name "weather" for registration and lookup.
func (c *WeatherCommand) Name() string {
	return "weather"
}

// Description returns a brief description of what the weather command does.
func (c *WeatherCommand) Description() string {
	return "Show current weather"
}

// Usage returns the syntax for the weather command.
func (c *WeatherCommand) Usage() string {
	return "weather [city]"
}

// Execute reports the weather for the joined arguments, or for the portfolio location.
func (c *WeatherCommand) Execute(_ context.Context, args []string, env foliotypes.Env) (foliotypes.Output, error) {
	city := strings.TrimSpace(strings.Join(args, " "))
	if city == "" {
		city = homeCity(env.Portfolio().Location())
	}

	h := fnv.New32a()
	_, _ = h.Write([]byte(strings.ToLower(city)))
	sum := h.Sum32()

	text := fmt.Sprintf("Weather in %s:\n  Temperature: %d°C\n  Condition:   %s\n  Wind:        %d km/h\n  Humidity:    %d%%",
		city,
		int(sum%35)-5,
		conditions[int(sum>>8)%len(conditions)],
		int(sum>>16)%40,
		30+int(sum>>24)%60,
	)
	return foliotypes.Typed(text), nil
}

// homeCity takes the city part of a location such as "Lisbon, Portugal" or "Remote / Lisbon".
func homeCity(location string) string {
	if i := strings.LastIndex(location, "/"); i >= 0 {
		location = location[i+1:]
	}
	if i := strings.Index(location, ","); i >= 0 {
		location = location[:i]
	}
	if city := strings.TrimSpace(location); city != "" {
		return city
	}
	return "Lisbon"
}
