package pipeline

import (
	"testing"

	"crm_pipeline/internal/domain/entities"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestFilter(t *testing.T) {
	t.Run("search is case insensitive", func(t *testing.T) {
		b := sampleBoard(t)
		got := Filter(b, Criteria{SearchTerm: "cloud"})

		require.Equal(t, 1, got.DealCount())
		d, stage, _, ok := got.FindDeal("1")
		require.True(t, ok)
		require.Equal(t, "lead", stage)
		require.Equal(t, "Cloud Migration Project", d.Title)
		_, _, _, ok = got.FindDeal("2")
		require.False(t, ok)
		require.Len(t, got.Stages(), len(b.Stages()))
	})

	t.Run("min value", func(t *testing.T) {
		b := sampleBoard(t)
		got := Filter(b, Criteria{MinValue: 150000})
		require.Equal(t, 3, got.DealCount())
	})

	t.Run("both inputs must match", func(t *testing.T) {
		b := sampleBoard(t)
		got := Filter(b, Criteria{SearchTerm: "MIGRATION", MinValue: 100000})
		require.Equal(t, 1, got.DealCount())
		_, _, _, ok := got.FindDeal("6")
		require.True(t, ok)
	})

	t.Run("authoritative board is untouched", func(t *testing.T) {
		b := sampleBoard(t)
		before := b.Stages()
		_ = Filter(b, Criteria{SearchTerm: "nothing matches this"})
		if diff := cmp.Diff(before, b.Stages()); diff != "" {
			t.Fatalf("filter mutated board:\n%s", diff)
		}

		cleared := Filter(b, Criteria{})
		require.Equal(t, b.DealCount(), cleared.DealCount())
	})
}

func TestCriteria_Matches(t *testing.T) {
	c := Criteria{SearchTerm: "Ai", MinValue: 10}
	require.True(t, c.Matches(entities.Deal{Title: "AI Implementation", Value: 10}))
	require.False(t, c.Matches(entities.Deal{Title: "AI Implementation", Value: 9.99}))
	require.False(t, c.Matches(entities.Deal{Title: "Security Suite", Value: 100}))
	require.True(t, Criteria{}.IsZero())
	require.False(t, c.IsZero())
}
