package fileio

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/rxdock/rxdock-sub002/geom"
	"github.com/rxdock/rxdock-sub002/model"
)

func TestCSVSinkWriteModel(tst *testing.T) {
	m := model.NewModel()
	m.Titles = append(m.Titles, "ligand-1")
	a := m.AddAtom()
	a.AtomicNo = 6
	a.Coord = geom.New(1, 2, 3)
	a.FormalCharge = -1
	m.SetData("SCORE", "-12.5")
	m.SetData("RANK", 1)

	var buf bytes.Buffer
	sink := NewCSVSink(&buf)
	if err := sink.WriteModel(m); err != nil {
		tst.Fatalf("WriteModel: %v", err)
	}
	if err := sink.Flush(); err != nil {
		tst.Fatalf("Flush: %v", err)
	}

	rows, err := csv.NewReader(bytes.NewReader(buf.Bytes())).ReadAll()
	if err != nil {
		tst.Fatalf("reading back CSV: %v", err)
	}
	if len(rows) != 1 {
		tst.Fatalf("expected 1 row, got %d", len(rows))
	}
	row := rows[0]
	if row[0] != "ligand-1" || row[1] != "1" {
		tst.Fatalf("unexpected header fields: %v", row[:2])
	}
	if row[2] != "6" || row[3] != "1" || row[4] != "2" || row[5] != "3" || row[6] != "-1" {
		tst.Fatalf("unexpected atom fields: %v", row[2:7])
	}
	// nData, then sorted "key=value" pairs: RANK before SCORE.
	if row[7] != "2" {
		tst.Fatalf("expected nData=2, got %q", row[7])
	}
	if row[8] != "RANK=1" || row[9] != "SCORE=-12.5" {
		tst.Fatalf("unexpected data fields: %v", row[8:10])
	}
}
