package scenario

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/cory-johannsen/slotstash/internal/game/inventory"
)

// WriteReport prints a slot table followed by per-kind totals and the total
// weight of c.
func WriteReport(w io.Writer, c *inventory.Container) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "container %s (%d slots x %d)\n", c.ID(), c.Capacity(), c.SlotCapacity())
	fmt.Fprintln(tw, "SLOT\tKIND\tAMOUNT\tFLAGS")

	var order []inventory.KindID
	totals := make(map[inventory.KindID]int)
	for _, s := range c.Slots() {
		kind, ok := s.Kind()
		label := "-"
		if ok {
			label = string(kind)
			if _, seen := totals[kind]; !seen {
				order = append(order, kind)
			}
			totals[kind] += s.Amount()
		}
		fmt.Fprintf(tw, "%d\t%s\t%d/%d\t%s\n", s.Index(), label, s.Amount(), s.Capacity(), slotFlags(s))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	for _, kind := range order {
		if _, err := fmt.Fprintf(w, "total %s: %d\n", kind, totals[kind]); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "weight: %.2f\n", c.TotalWeight())
	return err
}

func slotFlags(s *inventory.Slot) string {
	flags := ""
	if s.Locked() {
		flags += "L"
	}
	if it := s.Item(); it != nil && it.Equipped() {
		flags += "E"
	}
	if flags == "" {
		return "-"
	}
	return flags
}

// WriteResults prints one line per step outcome.
func WriteResults(w io.Writer, results []Result) error {
	for _, r := range results {
		status := "ok"
		switch {
		case r.Err != nil:
			status = "error: " + r.Err.Error()
		case !r.Applied:
			status = "declined"
		}
		if _, err := fmt.Fprintf(w, "%3d %-8s %s\n", r.Index, r.Step.Op, status); err != nil {
			return err
		}
	}
	return nil
}
