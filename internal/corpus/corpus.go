// Package corpus builds randomized inputs for cross-checking scanning strategies.
package corpus

import (
	"math/rand"
	"strings"

	"syreclabs.com/go/faker"
)

const (
	FamilyLiteral         = "literal"
	FamilySmallAlphabet   = "small-alphabet"
	FamilyLoremCharacters = "lorem-characters"
	FamilyLoremWords      = "lorem-words"
	FamilyBytes           = "bytes"

	defaultSamples   = 200
	defaultMaxLength = 64
)

type Options struct {
	Samples   int
	MaxLength int
	Seed      int64
}

type Sample struct {
	Family string
	Input  string
}

type Generator struct {
	options Options
	random  *rand.Rand
}

func New(options Options) *Generator {
	if options.Samples <= 0 {
		options.Samples = defaultSamples
	}
	if options.MaxLength <= 0 {
		options.MaxLength = defaultMaxLength
	}

	return &Generator{
		options: options,
		random:  rand.New(rand.NewSource(options.Seed)),
	}
}

// Literals are the hand-picked cases every strategy must agree on.
func Literals() []Sample {
	inputs := []string{"abcabcbb", "bbbbb", "pwwkew", "", " ", "dvdf", "au", "abba", "tmmzuxt", "aA", "a b c a"}
	samples := make([]Sample, 0, len(inputs))
	for _, input := range inputs {
		samples = append(samples, Sample{Family: FamilyLiteral, Input: input})
	}

	return samples
}

// UnseededFamilies lists the families drawn from faker's global random source,
// which Options.Seed does not control.
func UnseededFamilies() []string {
	return []string{FamilyLoremCharacters, FamilyLoremWords}
}

// Generate returns the literal cases followed by Options.Samples random
// samples spread over the random families.
func (generator *Generator) Generate() []Sample {
	families := []struct {
		name     string
		generate func(length int) string
	}{
		{name: FamilySmallAlphabet, generate: generator.smallAlphabet},
		{name: FamilyLoremCharacters, generate: generator.loremCharacters},
		{name: FamilyLoremWords, generate: generator.loremWords},
		{name: FamilyBytes, generate: generator.bytes},
	}

	samples := Literals()
	for i := 0; i < generator.options.Samples; i++ {
		family := families[i%len(families)]
		length := generator.random.Intn(generator.options.MaxLength + 1)
		samples = append(samples, Sample{Family: family.name, Input: family.generate(length)})
	}

	return samples
}

// smallAlphabet repeats units heavily, which keeps stale last-seen entries around.
func (generator *Generator) smallAlphabet(length int) string {
	alphabet := "abcd"[:1+generator.random.Intn(4)]
	var builder strings.Builder
	for i := 0; i < length; i++ {
		builder.WriteByte(alphabet[generator.random.Intn(len(alphabet))])
	}

	return builder.String()
}

func (generator *Generator) loremCharacters(length int) string {
	if length == 0 {
		return ""
	}

	return generator.truncate(faker.Lorem().Characters(length))
}

func (generator *Generator) loremWords(length int) string {
	words := 1 + length/4

	return generator.truncate(strings.Join(faker.Lorem().Words(words), " "))
}

func (generator *Generator) bytes(length int) string {
	units := make([]byte, length)
	for i := range units {
		units[i] = byte(generator.random.Intn(256))
	}

	return string(units)
}

func (generator *Generator) truncate(s string) string {
	if len(s) > generator.options.MaxLength {
		return s[:generator.options.MaxLength]
	}

	return s
}
