package seed

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lucas-rech/desafio-prothera/internal/domain"
)

// Preset names a roster size for Generate.
type Preset string

const (
	PresetSmall  Preset = "small"
	PresetMedium Preset = "medium"
	PresetLarge  Preset = "large"
)

var (
	firstNames = []string{"Ana", "Bruno", "Carla", "Diego", "Eduarda", "Felipe", "Gabriela", "Hugo", "Isabela", "Jorge", "Larissa", "Mateus"}
	lastNames  = []string{"Silva", "Souza", "Costa", "Santos", "Oliveira", "Pereira", "Lima", "Ferreira"}
	roles      = []string{"Operador", "Coordenador", "Diretor", "Recepcionista", "Contador", "Gerente", "Eletricista"}
)

// PresetSize returns the number of employees generated for preset.
func PresetSize(preset Preset) int {
	switch preset {
	case PresetSmall:
		return 10
	case PresetMedium:
		return 100
	case PresetLarge:
		return 1000
	default:
		return 100
	}
}

// Generate builds a synthetic roster of count employees. The same seed
// always yields the same roster.
func Generate(count int, seed int64) Roster {
	rnd := rand.New(rand.NewSource(seed))
	from := time.Date(1960, time.January, 1, 0, 0, 0, 0, time.UTC)
	span := int(time.Date(2005, time.December, 31, 0, 0, 0, 0, time.UTC).Sub(from).Hours() / 24)

	roster := Roster{Employees: make([]EmployeeRecord, 0, count)}
	for i := 0; i < count; i++ {
		birth := from.AddDate(0, 0, rnd.Intn(span+1))
		// salaries between 1000.00 and 20000.00
		cents := 100000 + rnd.Int63n(1900001)
		roster.Employees = append(roster.Employees, EmployeeRecord{
			Name:      fmt.Sprintf("%s %s", firstNames[rnd.Intn(len(firstNames))], lastNames[rnd.Intn(len(lastNames))]),
			Role:      roles[rnd.Intn(len(roles))],
			BirthDate: domain.FormatDate(birth),
			Salary:    fmt.Sprintf("%d.%02d", cents/100, cents%100),
		})
	}
	return roster
}

// Write encodes roster as YAML, in the format Load reads.
func Write(w io.Writer, roster Roster) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(roster); err != nil {
		return fmt.Errorf("encode roster: %w", err)
	}
	return enc.Close()
}
