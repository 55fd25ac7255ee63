package grass

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"go.scnd.dev/open/syrup/grass/lib/type/enum"
	"go.scnd.dev/open/syrup/grass/lib/type/tuple"
)

func newTestService(l int, alpha int, delta float64, exhaustion enum.ExhaustionPolicy) Server {
	return New(&Parameters{
		PrefixLength: l,
		Alpha:        alpha,
		Delta:        delta,
		Exhaustion:   exhaustion,
		Workers:      2,
	})
}

func TestStemDenseCluster(t *testing.T) {
	service := newTestService(3, 1, 0.8, enum.ExhaustionStrict)

	result, err := service.Stem(context.Background(), []string{"legs", "leg", "legalize", "legal"})
	if err != nil {
		t.Fatalf("Stem() error = %v", err)
	}

	wantClasses := []tuple.StemClass{{"leg", "legal", "legalize", "legs"}}
	if !classesEqual(result.Classes, wantClasses) {
		t.Errorf("Stem() classes = %q, want %q", result.Classes, wantClasses)
	}

	wantPairs := []*tuple.StemPair{
		{Word: "legal", Stem: "leg"},
		{Word: "legalize", Stem: "leg"},
		{Word: "legs", Stem: "leg"},
	}
	if !reflect.DeepEqual(result.Pairs, wantPairs) {
		t.Errorf("Stem() pairs = %v, want %v", result.Pairs, wantPairs)
	}

	wantStat := &tuple.Stat{
		PrefixLength:       3,
		PrefixClasses:      1,
		Signatures:         6,
		FrequentSignatures: 6,
		Vertices:           4,
		Edges:              6,
		StemClasses:        1,
	}
	if !reflect.DeepEqual(result.Stat, wantStat) {
		t.Errorf("Stem() stat = %+v, want %+v", result.Stat, wantStat)
	}
}

func TestStemNoSimilarity(t *testing.T) {
	lexicon := []string{"cat", "dog"}

	_, err := newTestService(1, 1, 0.8, enum.ExhaustionStrict).Stem(context.Background(), lexicon)
	if !errors.Is(err, ErrNoSimilarity) {
		t.Errorf("Stem(strict) error = %v, want %v", err, ErrNoSimilarity)
	}

	result, err := newTestService(1, 1, 0.8, enum.ExhaustionLenient).Stem(context.Background(), lexicon)
	if err != nil {
		t.Fatalf("Stem(lenient) error = %v", err)
	}
	want := []*tuple.StemPair{
		{Word: "cat", Stem: "cat"},
		{Word: "dog", Stem: "dog"},
	}
	if !reflect.DeepEqual(result.Pairs, want) {
		t.Errorf("Stem(lenient) pairs = %v, want %v", result.Pairs, want)
	}
}

func TestStemBoundaries(t *testing.T) {
	service := newTestService(0, 1, 0.8, enum.ExhaustionStrict)

	result, err := service.Stem(context.Background(), nil)
	if err != nil {
		t.Fatalf("Stem(empty) error = %v", err)
	}
	if len(result.Classes) != 0 || len(result.Pairs) != 0 {
		t.Errorf("Stem(empty) = %d classes %d pairs, want none", len(result.Classes), len(result.Pairs))
	}

	result, err = service.Stem(context.Background(), []string{"leg"})
	if err != nil {
		t.Fatalf("Stem(single) error = %v", err)
	}
	want := []*tuple.StemPair{{Word: "leg", Stem: "leg"}}
	if !reflect.DeepEqual(result.Pairs, want) {
		t.Errorf("Stem(single) pairs = %v, want %v", result.Pairs, want)
	}
	if len(result.Classes) != 1 {
		t.Errorf("Stem(single) classes = %q, want one", result.Classes)
	}

	result, err = service.Stem(context.Background(), []string{"legs", "leg", "legs"})
	if err != nil {
		t.Fatalf("Stem(duplicates) error = %v", err)
	}
	if result.Stat.Vertices != 2 {
		t.Errorf("Stem(duplicates) vertices = %d, want 2", result.Stat.Vertices)
	}
}

func TestStemConfigurationErrors(t *testing.T) {
	tests := []struct {
		name       string
		parameters *Parameters
	}{
		{"negative l", &Parameters{PrefixLength: -1, Alpha: 1, Delta: 0.8, Exhaustion: enum.ExhaustionStrict}},
		{"zero alpha", &Parameters{Alpha: 0, Delta: 0.8, Exhaustion: enum.ExhaustionStrict}},
		{"zero delta", &Parameters{Alpha: 1, Delta: 0, Exhaustion: enum.ExhaustionStrict}},
		{"delta above one", &Parameters{Alpha: 1, Delta: 1.5, Exhaustion: enum.ExhaustionStrict}},
		{"negative workers", &Parameters{Alpha: 1, Delta: 0.8, Workers: -1, Exhaustion: enum.ExhaustionStrict}},
		{"unknown exhaustion", &Parameters{Alpha: 1, Delta: 0.8, Exhaustion: "never"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.parameters).Stem(context.Background(), []string{"leg", "legs"})
			if !errors.Is(err, ErrConfiguration) {
				t.Errorf("Stem() error = %v, want %v", err, ErrConfiguration)
			}
		})
	}

	if err := DefaultParameters().Validate(); err != nil {
		t.Errorf("DefaultParameters().Validate() error = %v", err)
	}
}

func TestStemIdempotent(t *testing.T) {
	service := newTestService(4, 1, 0.8, enum.ExhaustionStrict)

	first, err := service.Stem(context.Background(), sampleLexicon)
	if err != nil {
		t.Fatalf("Stem() error = %v", err)
	}
	for range 5 {
		again, err := service.Stem(context.Background(), sampleLexicon)
		if err != nil {
			t.Fatalf("Stem() error = %v", err)
		}
		if !reflect.DeepEqual(first, again) {
			t.Fatal("Stem() is not deterministic across runs")
		}
	}

	if len(first.Pairs) > len(sampleLexicon) {
		t.Errorf("Stem() pairs = %d, want <= %d", len(first.Pairs), len(sampleLexicon))
	}
	for i := 1; i < len(first.Pairs); i++ {
		if first.Pairs[i-1].Word >= first.Pairs[i].Word {
			t.Errorf("pairs not sorted at %d: %q >= %q", i, first.Pairs[i-1].Word, first.Pairs[i].Word)
		}
	}
}

func TestStemTable(t *testing.T) {
	classes := []tuple.StemClass{{"legs", "leg"}, {"cat"}, {"farm", "farms", "farmer"}}

	got := StemTable(classes, false)
	want := []*tuple.StemPair{
		{Word: "cat", Stem: "cat"},
		{Word: "farmer", Stem: "farm"},
		{Word: "farms", Stem: "farm"},
		{Word: "leg", Stem: "legs"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("StemTable() = %v, want %v", got, want)
	}

	got = StemTable(classes, true)
	if len(got) != 6 {
		t.Errorf("StemTable(emitRepresentative) = %d pairs, want 6", len(got))
	}
}

func TestParametersFromConfig(t *testing.T) {
	p := ParametersFromConfig(nil)
	if !reflect.DeepEqual(p, DefaultParameters()) {
		t.Errorf("ParametersFromConfig(nil) = %+v, want defaults", p)
	}
}
