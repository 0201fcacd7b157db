package tableui

import "testing"

func TestResizeColumnWidthsCommandNormalizes(t *testing.T) {
	f := newFixture(t, 2, 3, nil)

	f.resize.ResizeColumnWidths.Execute(f.table, []float64{10, 10, 20})
	if got := f.columnWidthsAttr(); got != "25%,25%,50%" {
		t.Errorf("columnWidths = %q, want normalized \"25%%,25%%,50%%\"", got)
	}
}

func TestResizeColumnWidthsCommandShortSequenceIsReconciled(t *testing.T) {
	f := newFixture(t, 2, 3, nil)

	// Two entries on a three-column table: the post-fixer appends a minimum
	// width column and renormalizes inside the same transaction.
	f.resize.ResizeColumnWidths.Execute(f.table, []float64{50, 50})
	if got := f.columnWidthsAttr(); got != "48.08%,48.08%,3.84%" {
		t.Errorf("columnWidths = %q", got)
	}
	assertWidthsSumTo100(t, f.columnWidthsAttr())
}

func TestResizeColumnWidthsCommandDisabled(t *testing.T) {
	f := newFixture(t, 2, 3, nil)

	f.doc.SetReadOnly(true)
	if f.resize.ResizeColumnWidths.IsEnabled() {
		t.Error("command enabled on a read-only document")
	}
	f.resize.ResizeColumnWidths.Execute(f.table, []float64{50, 25, 25})
	if f.table.HasAttribute(ColumnWidthsAttribute) {
		t.Error("disabled command wrote columnWidths")
	}

	f.doc.SetReadOnly(false)
	f.resize.SetEnabled(false)
	if f.resize.ResizeColumnWidths.IsEnabled() {
		t.Error("command enabled while the feature is disabled")
	}
}

func TestResizeTableWidthCommandSetsBothAttributes(t *testing.T) {
	f := newFixture(t, 2, 3, nil)

	f.resize.ResizeTableWidth.Execute(f.table, "60%", []float64{25, 25, 50})
	if got := f.tableWidthAttr(); got != "60%" {
		t.Errorf("tableWidth = %q, want \"60%%\"", got)
	}
	if got := f.columnWidthsAttr(); got != "25%,25%,50%" {
		t.Errorf("columnWidths = %q", got)
	}
}

func TestResizeTableWidthCommandEmptyWidthRemoves(t *testing.T) {
	f := newFixture(t, 2, 3, nil)

	f.resize.ResizeTableWidth.Execute(f.table, "60%", []float64{25, 25, 50})
	f.resize.ResizeTableWidth.Execute(f.table, "", []float64{25, 25, 50})
	if f.table.HasAttribute(TableWidthAttribute) {
		t.Errorf("tableWidth = %q, want removed", f.tableWidthAttr())
	}
	if got := f.columnWidthsAttr(); got != "25%,25%,50%" {
		t.Errorf("columnWidths = %q, must survive the width removal", got)
	}
}

func TestCommandsObserveSingleTransaction(t *testing.T) {
	f := newFixture(t, 2, 3, nil)

	// Both attributes must land in one settled batch.
	var observed []string
	f.doc.AddChangeListener(func(b *Batch) {
		observed = append(observed, f.tableWidthAttr()+"|"+f.columnWidthsAttr())
	})

	f.resize.ResizeTableWidth.Execute(f.table, "60%", []float64{25, 25, 50})
	if len(observed) != 1 {
		t.Fatalf("listener ran %d times, want 1", len(observed))
	}
	if observed[0] != "60%|25%,25%,50%" {
		t.Errorf("listener saw %q, want both attributes settled together", observed[0])
	}
}
