package memory

import (
	"autoconnect/internal/domain/entity"
	"autoconnect/internal/errors"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Seed is the directory content of a seed file.
type Seed struct {
	Vehicles []entity.VehicleSummary `json:"vehicles"`
	Users    []entity.UserSummary    `json:"users"`
}

// LoadSeed reads a YAML seed file. Keys use the JSON names of the summaries.
func LoadSeed(path string) (*Seed, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read seed file %s", path)
	}

	seed := new(Seed)
	if err := k.UnmarshalWithConf("", seed, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           seed,
			TagName:          "json",
			WeaklyTypedInput: true,
			DecodeHook:       mapstructure.TextUnmarshallerHookFunc(),
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "decode seed file %s", path)
	}

	return seed, nil
}

// Apply loads the seed into the store directory.
func (s *Store) Apply(seed *Seed) {
	for i := range seed.Vehicles {
		s.PutVehicle(&seed.Vehicles[i])
	}
	for i := range seed.Users {
		s.PutUser(&seed.Users[i])
	}
}
