package pipeline

import (
	"math/rand/v2"
	"testing"
	"time"

	"crm_pipeline/internal/domain/entities"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

var boardCmp = cmp.AllowUnexported(Board{})

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func strPtr(v string) *string { return &v }

func day(y, m, d int) time.Time { return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC) }

func ids(deals []entities.Deal) []string {
	out := make([]string, 0, len(deals))
	for _, d := range deals {
		out = append(out, d.ID)
	}
	return out
}

func sampleDefinitions() []entities.StageDefinition {
	return []entities.StageDefinition{
		{ID: "lead", Title: "New Leads", Target: floatPtr(50000), Probability: intPtr(20)},
		{ID: "contact", Title: "First Contact", Target: floatPtr(75000), Probability: intPtr(35)},
		{ID: "meeting", Title: "Meeting Scheduled", Target: floatPtr(100000), Probability: intPtr(45)},
		{ID: "proposal", Title: "Proposal", Target: floatPtr(200000), Probability: intPtr(65)},
		{ID: "negotiation", Title: "Negotiation", Target: floatPtr(250000), Probability: intPtr(80)},
		{ID: "closed", Title: "Closed Won", Target: floatPtr(300000), Probability: intPtr(100), Outcome: entities.StageOutcomeWon},
		{ID: "lost", Title: "Closed Lost", Probability: intPtr(0), Outcome: entities.StageOutcomeLost},
		{ID: "parked", Title: "Parked"},
	}
}

func sampleBoard(t *testing.T) Board {
	t.Helper()
	defs := sampleDefinitions()
	stages := make([]entities.Stage, 0, len(defs))
	for _, d := range defs {
		stages = append(stages, entities.NewStage(d))
	}
	deal := func(id, title string, value float64, prob int, status entities.DealStatus) entities.Deal {
		return entities.Deal{ID: id, Title: title, Company: "Co " + id, Contact: "Contact " + id, Value: value, Probability: prob, DueDate: day(2025, 7, 15), Status: status}
	}
	stages[0].Deals = []entities.Deal{
		deal("1", "Cloud Migration Project", 35000, 20, entities.DealStatusActive),
		deal("7", "Backup Rollout", 12000, 20, entities.DealStatusActive),
		deal("8", "Edge Caching", 9000, 20, entities.DealStatusActive),
	}
	stages[1].Deals = []entities.Deal{deal("2", "AI Implementation", 85000, 35, entities.DealStatusActive)}
	stages[2].Deals = []entities.Deal{deal("3", "Digital Transformation", 150000, 45, entities.DealStatusActive)}
	stages[3].Deals = []entities.Deal{deal("4", "Security Suite Upgrade", 95000, 65, entities.DealStatusActive)}
	stages[4].Deals = []entities.Deal{deal("5", "Enterprise CRM Implementation", 200000, 80, entities.DealStatusActive)}
	stages[5].Deals = []entities.Deal{deal("6", "Data Center Migration", 175000, 100, entities.DealStatusWon)}
	return NewBoard(stages, RulesFromDefinitions(defs))
}

func stageDeals(t *testing.T, b Board, stageID string) []entities.Deal {
	t.Helper()
	s, ok := b.Stage(stageID)
	require.True(t, ok, "stage %s", stageID)
	return s.Deals
}

func TestBoard_ReorderWithinStage(t *testing.T) {
	t.Run("moves deal and keeps others in order", func(t *testing.T) {
		b := sampleBoard(t)
		next, applied := b.ReorderWithinStage("lead", 0, 2)
		require.True(t, applied)
		require.Equal(t, []string{"7", "8", "1"}, ids(stageDeals(t, next, "lead")))
		require.Equal(t, b.DealCount(), next.DealCount())
		require.Equal(t, 20, stageDeals(t, next, "lead")[2].Probability)
	})

	t.Run("same index is a no-op", func(t *testing.T) {
		b := sampleBoard(t)
		next, applied := b.ReorderWithinStage("lead", 1, 1)
		require.False(t, applied)
		if diff := cmp.Diff(b, next, boardCmp); diff != "" {
			t.Fatalf("board changed (-before +after):\n%s", diff)
		}
	})

	t.Run("destination index is clamped", func(t *testing.T) {
		b := sampleBoard(t)
		next, applied := b.ReorderWithinStage("lead", 0, 99)
		require.True(t, applied)
		require.Equal(t, []string{"7", "8", "1"}, ids(stageDeals(t, next, "lead")))

		next, applied = b.ReorderWithinStage("lead", 2, -5)
		require.True(t, applied)
		require.Equal(t, []string{"8", "1", "7"}, ids(stageDeals(t, next, "lead")))
	})

	t.Run("invalid references are no-ops", func(t *testing.T) {
		b := sampleBoard(t)
		for _, tc := range []struct {
			stage    string
			from, to int
		}{
			{"missing", 0, 1},
			{"lead", 3, 0},
			{"lead", -1, 0},
			{"parked", 0, 0},
		} {
			next, applied := b.ReorderWithinStage(tc.stage, tc.from, tc.to)
			require.False(t, applied)
			if diff := cmp.Diff(b, next, boardCmp); diff != "" {
				t.Fatalf("reorder %+v changed board:\n%s", tc, diff)
			}
		}
	})

	t.Run("receiver is not mutated", func(t *testing.T) {
		b := sampleBoard(t)
		before := b.Stages()
		_, _ = b.ReorderWithinStage("lead", 0, 2)
		if diff := cmp.Diff(before, b.Stages()); diff != "" {
			t.Fatalf("receiver mutated:\n%s", diff)
		}
	})
}

func TestBoard_MoveAcrossStages(t *testing.T) {
	t.Run("negotiation to closed wins the deal", func(t *testing.T) {
		b := sampleBoard(t)
		original, _, _, _ := b.FindDeal("5")

		next, applied := b.MoveAcrossStages("5", "negotiation", "closed", 0)
		require.True(t, applied)

		closed := stageDeals(t, next, "closed")
		require.Equal(t, []string{"5", "6"}, ids(closed))
		require.Empty(t, stageDeals(t, next, "negotiation"))

		moved := closed[0]
		require.Equal(t, 100, moved.Probability)
		require.Equal(t, entities.DealStatusWon, moved.Status)

		want := original
		want.Probability = 100
		want.Status = entities.DealStatusWon
		if diff := cmp.Diff(want, moved); diff != "" {
			t.Fatalf("identity fields changed:\n%s", diff)
		}
	})

	t.Run("closed back to lead reactivates", func(t *testing.T) {
		b := sampleBoard(t)
		next, applied := b.MoveAcrossStages("6", "closed", "lead", 1)
		require.True(t, applied)
		d, stage, idx, ok := next.FindDeal("6")
		require.True(t, ok)
		require.Equal(t, "lead", stage)
		require.Equal(t, 1, idx)
		require.Equal(t, 20, d.Probability)
		require.Equal(t, entities.DealStatusActive, d.Status)
	})

	t.Run("lost stage marks the deal lost with configured zero probability", func(t *testing.T) {
		b := sampleBoard(t)
		next, applied := b.MoveAcrossStages("2", "contact", "lost", 0)
		require.True(t, applied)
		d, _, _, _ := next.FindDeal("2")
		require.Equal(t, 0, d.Probability)
		require.Equal(t, entities.DealStatusLost, d.Status)
	})

	t.Run("stage without probability keeps the current one", func(t *testing.T) {
		b := sampleBoard(t)
		next, applied := b.MoveAcrossStages("4", "proposal", "parked", 0)
		require.True(t, applied)
		d, _, _, _ := next.FindDeal("4")
		require.Equal(t, 65, d.Probability)
		require.Equal(t, entities.DealStatusActive, d.Status)
	})

	t.Run("destination index is clamped to the end", func(t *testing.T) {
		b := sampleBoard(t)
		next, _ := b.MoveAcrossStages("2", "contact", "lead", 42)
		require.Equal(t, []string{"1", "7", "8", "2"}, ids(stageDeals(t, next, "lead")))
	})

	t.Run("same stage degrades to reorder", func(t *testing.T) {
		b := sampleBoard(t)
		next, applied := b.MoveAcrossStages("1", "lead", "lead", 2)
		require.True(t, applied)
		require.Equal(t, []string{"7", "8", "1"}, ids(stageDeals(t, next, "lead")))
	})

	t.Run("invalid references are no-ops", func(t *testing.T) {
		b := sampleBoard(t)
		cases := [][3]string{
			{"5", "missing", "closed"},
			{"5", "negotiation", "missing"},
			{"404", "negotiation", "closed"},
			{"1", "negotiation", "closed"},
		}
		for _, c := range cases {
			next, applied := b.MoveAcrossStages(c[0], c[1], c[2], 0)
			require.False(t, applied)
			if diff := cmp.Diff(b, next, boardCmp); diff != "" {
				t.Fatalf("move %v changed board:\n%s", c, diff)
			}
		}
	})

	t.Run("receiver is not mutated", func(t *testing.T) {
		b := sampleBoard(t)
		before := b.Stages()
		_, _ = b.MoveAcrossStages("5", "negotiation", "closed", 0)
		if diff := cmp.Diff(before, b.Stages()); diff != "" {
			t.Fatalf("receiver mutated:\n%s", diff)
		}
	})
}

func TestBoard_ApplyDrop(t *testing.T) {
	t.Run("cancelled gesture leaves state identical", func(t *testing.T) {
		b := sampleBoard(t)
		next, applied := b.ApplyDrop(DropResult{Source: DropLocation{StageID: "negotiation", Index: 0}})
		require.False(t, applied)
		if diff := cmp.Diff(b, next, boardCmp); diff != "" {
			t.Fatalf("abort changed board:\n%s", diff)
		}
	})

	t.Run("same stage reorders", func(t *testing.T) {
		b := sampleBoard(t)
		next, applied := b.ApplyDrop(DropResult{
			Source:      DropLocation{StageID: "lead", Index: 2},
			Destination: &DropLocation{StageID: "lead", Index: 0},
		})
		require.True(t, applied)
		require.Equal(t, []string{"8", "1", "7"}, ids(stageDeals(t, next, "lead")))
	})

	t.Run("cross stage moves by source position", func(t *testing.T) {
		b := sampleBoard(t)
		next, applied := b.ApplyDrop(DropResult{
			Source:      DropLocation{StageID: "lead", Index: 1},
			Destination: &DropLocation{StageID: "proposal", Index: 1},
		})
		require.True(t, applied)
		require.Equal(t, []string{"4", "7"}, ids(stageDeals(t, next, "proposal")))
		d, _, _, _ := next.FindDeal("7")
		require.Equal(t, 65, d.Probability)
	})

	t.Run("unresolvable positions are no-ops", func(t *testing.T) {
		b := sampleBoard(t)
		for _, r := range []DropResult{
			{Source: DropLocation{StageID: "lead", Index: 9}, Destination: &DropLocation{StageID: "closed"}},
			{Source: DropLocation{StageID: "nope", Index: 0}, Destination: &DropLocation{StageID: "closed"}},
			{Source: DropLocation{StageID: "lead", Index: 0}, Destination: &DropLocation{StageID: "nope"}},
		} {
			next, applied := b.ApplyDrop(r)
			require.False(t, applied)
			if diff := cmp.Diff(b, next, boardCmp); diff != "" {
				t.Fatalf("drop %+v changed board:\n%s", r, diff)
			}
		}
	})
}

func TestBoard_RandomDropsPreserveInvariants(t *testing.T) {
	b := sampleBoard(t)
	rules := b.Rules()
	stages := b.Stages()
	total := b.DealCount()
	rng := rand.New(rand.NewPCG(7, 42))

	for i := 0; i < 500; i++ {
		src := stages[rng.IntN(len(stages))].ID
		dst := stages[rng.IntN(len(stages))].ID
		srcDeals := stageDeals(t, b, src)
		r := DropResult{Source: DropLocation{StageID: src, Index: rng.IntN(len(srcDeals) + 1)}}
		if rng.IntN(10) > 0 {
			r.Destination = &DropLocation{StageID: dst, Index: rng.IntN(5)}
		}

		var moving entities.Deal
		if r.Source.Index < len(srcDeals) {
			moving = srcDeals[r.Source.Index]
		}

		next, applied := b.ApplyDrop(r)
		require.Equal(t, total, next.DealCount(), "step %d", i)

		if applied && r.Destination != nil {
			got, stage, _, ok := next.FindDeal(moving.ID)
			require.True(t, ok)
			require.Equal(t, dst, stage)
			if src == dst {
				require.Equal(t, moving.Probability, got.Probability, "reorder touched probability")
			} else if p, ok := rules.Probabilities.Lookup(dst); ok {
				require.Equal(t, p, got.Probability)
			} else {
				require.Equal(t, moving.Probability, got.Probability)
			}
		}
		if !applied {
			if diff := cmp.Diff(b, next, boardCmp); diff != "" {
				t.Fatalf("step %d: no-op changed board:\n%s", i, diff)
			}
		}
		b = next
	}
}

func TestBoard_AddEditDelete(t *testing.T) {
	t.Run("add defaults to first stage", func(t *testing.T) {
		b := sampleBoard(t)
		next, applied := b.AddDeal("", entities.Deal{ID: "new", Title: "Fresh", Value: 1000, Probability: 99})
		require.True(t, applied)
		lead := stageDeals(t, next, "lead")
		added := lead[len(lead)-1]
		require.Equal(t, "new", added.ID)
		require.Equal(t, 20, added.Probability)
		require.Equal(t, entities.DealStatusActive, added.Status)
		require.Equal(t, b.DealCount()+1, next.DealCount())
	})

	t.Run("add into won stage", func(t *testing.T) {
		b := sampleBoard(t)
		next, applied := b.AddDeal("closed", entities.Deal{ID: "new", Title: "Signed"})
		require.True(t, applied)
		d, stage, _, _ := next.FindDeal("new")
		require.Equal(t, "closed", stage)
		require.Equal(t, entities.DealStatusWon, d.Status)
	})

	t.Run("add rejects unknown stage and duplicate id", func(t *testing.T) {
		b := sampleBoard(t)
		_, applied := b.AddDeal("missing", entities.Deal{ID: "new"})
		require.False(t, applied)
		_, applied = b.AddDeal("lead", entities.Deal{ID: "5"})
		require.False(t, applied)
		_, applied = b.AddDeal("lead", entities.Deal{})
		require.False(t, applied)
		_, applied = NewBoard(nil, Rules{}).AddDeal("", entities.Deal{ID: "x"})
		require.False(t, applied)
	})

	t.Run("edit patches fields in place", func(t *testing.T) {
		b := sampleBoard(t)
		due := day(2026, 1, 31)
		next, applied := b.EditDeal("3", entities.DealPatch{Title: strPtr("Digital Transformation II"), Value: floatPtr(160000), DueDate: &due})
		require.True(t, applied)
		d, stage, idx, _ := next.FindDeal("3")
		require.Equal(t, "meeting", stage)
		require.Equal(t, 0, idx)
		require.Equal(t, "Digital Transformation II", d.Title)
		require.Equal(t, 160000.0, d.Value)
		require.True(t, d.DueDate.Equal(due))
		require.Equal(t, 45, d.Probability)
		require.Equal(t, "Co 3", d.Company)

		orig, _, _, _ := b.FindDeal("3")
		require.Equal(t, "Digital Transformation", orig.Title)
	})

	t.Run("edit unknown or empty patch is a no-op", func(t *testing.T) {
		b := sampleBoard(t)
		_, applied := b.EditDeal("404", entities.DealPatch{Title: strPtr("x")})
		require.False(t, applied)
		_, applied = b.EditDeal("3", entities.DealPatch{})
		require.False(t, applied)
	})

	t.Run("delete removes from holding stage", func(t *testing.T) {
		b := sampleBoard(t)
		next, applied := b.DeleteDeal("7")
		require.True(t, applied)
		require.Equal(t, []string{"1", "8"}, ids(stageDeals(t, next, "lead")))
		_, _, _, found := next.FindDeal("7")
		require.False(t, found)

		_, applied = next.DeleteDeal("7")
		require.False(t, applied)
	})
}

func TestNewBoard_CopiesInput(t *testing.T) {
	stages := []entities.Stage{{ID: "a", Deals: []entities.Deal{{ID: "1", Value: 10}}}}
	b := NewBoard(stages, Rules{})
	stages[0].Deals[0].Value = 999

	s, _ := b.Stage("a")
	require.Equal(t, 10.0, s.Deals[0].Value)

	out := b.Stages()
	out[0].Deals[0].Value = 5
	s, _ = b.Stage("a")
	require.Equal(t, 10.0, s.Deals[0].Value)
}
