package scenario

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/cory-johannsen/slotstash/internal/game/inventory"
)

// Result reports the outcome of one step. Applied is false when the container
// declined the operation; Err is set only for malformed targets.
type Result struct {
	Index   int
	Step    Step
	Applied bool
	Err     error
}

// Runner replays steps against a container.
type Runner struct {
	c      *inventory.Container
	logger *zap.Logger
}

// NewRunner creates a Runner for c.
//
// Precondition: c must be non-nil; logger may be nil.
func NewRunner(c *inventory.Container, logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{c: c, logger: logger.With(zap.String("container", c.ID()))}
}

// Run applies steps in order. A declined or failed step does not stop the run.
//
// Postcondition: len(result) == len(steps).
func (r *Runner) Run(steps []Step) []Result {
	results := make([]Result, len(steps))
	for i, st := range steps {
		if st.Sender == "" {
			st.Sender = DefaultSender
		}
		applied, err := r.apply(st)
		results[i] = Result{Index: i, Step: st, Applied: applied, Err: err}

		fields := []zap.Field{
			zap.Int("step", i),
			zap.String("op", string(st.Op)),
			zap.Bool("applied", applied),
		}
		if err != nil {
			r.logger.Warn("scenario: step failed", append(fields, zap.Error(err))...)
			continue
		}
		r.logger.Debug("scenario: step done", fields...)
	}
	return results
}

func (r *Runner) apply(st Step) (bool, error) {
	switch st.Op {
	case OpAdd:
		return r.c.TryAdd(st.Sender, inventory.NewItem(st.Kind, st.Amount)), nil
	case OpRemove:
		before := r.c.Amount(st.Kind)
		r.c.Remove(st.Sender, st.Kind, st.Amount)
		return r.c.Amount(st.Kind) < before, nil
	case OpTransfer:
		before := slotAmount(r.c, st.To)
		if err := r.c.TransferAt(st.Sender, st.From, st.To); err != nil {
			return false, err
		}
		return slotAmount(r.c, st.To) != before, nil
	case OpLock, OpUnlock:
		set := r.c.Lock
		if st.Op == OpUnlock {
			set = r.c.Unlock
		}
		if err := set(st.Sender, st.Slot); err != nil {
			return false, err
		}
		return true, nil
	case OpEquip:
		slots := r.c.SlotsOf(st.Kind)
		if len(slots) == 0 {
			return false, fmt.Errorf("no %q in container", st.Kind)
		}
		if slots[0].Item().Equipped() == !st.Unequip {
			return false, nil
		}
		if err := r.c.SetEquipped(st.Sender, slots[0].Index(), !st.Unequip); err != nil {
			return false, err
		}
		return true, nil
	default:
		return false, fmt.Errorf("unknown op %q", st.Op)
	}
}

func slotAmount(c *inventory.Container, index int) int {
	if s, ok := c.Slot(index); ok {
		return s.Amount()
	}
	return 0
}
