// Package export writes planning output in machine-readable formats.
package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"sort"
	"strconv"
	"time"

	"github.com/avelys/blockplan/core/capacity"
	"github.com/avelys/blockplan/core/planner"
)

type proposalRow struct {
	ID              string   `json:"id"`
	ItemID          string   `json:"item_id"`
	ItemTitle       string   `json:"item_title"`
	Lane            string   `json:"lane"`
	Start           string   `json:"start"`
	End             string   `json:"end"`
	DurationMinutes int      `json:"duration_minutes"`
	Confidence      float64  `json:"confidence"`
	Reason          string   `json:"reason"`
	Alternatives    []string `json:"alternatives,omitempty"`
}

type infeasibleRow struct {
	ItemID  string   `json:"item_id"`
	Title   string   `json:"title"`
	Reason  string   `json:"reason"`
	Options []string `json:"options"`
}

type resultDoc struct {
	Proposals  []proposalRow     `json:"proposals"`
	Infeasible []infeasibleRow   `json:"infeasible"`
	AECByDate  map[string]aecRow `json:"aec_by_date"`
}

type aecRow struct {
	SEWMinutes       int  `json:"sew_minutes"`
	MeetingMinutes   int  `json:"meeting_minutes"`
	ProtectedMinutes int  `json:"protected_minutes"`
	AECMinutes       int  `json:"aec_minutes"`
	EventCount       int  `json:"event_count"`
	Weekend          bool `json:"is_weekend"`
}

// WriteResultJSON writes the full pass result to w in JSON format.
func WriteResultJSON(w io.Writer, res planner.PlanResult) error {
	doc := resultDoc{
		Proposals:  make([]proposalRow, 0, len(res.Proposals)),
		Infeasible: make([]infeasibleRow, 0, len(res.Infeasible)),
		AECByDate:  make(map[string]aecRow, len(res.AECByDate)),
	}
	for _, p := range res.Proposals {
		doc.Proposals = append(doc.Proposals, toRow(p))
	}
	for _, inf := range res.Infeasible {
		opts := make([]string, len(inf.Options))
		for i, o := range inf.Options {
			opts[i] = string(o)
		}
		doc.Infeasible = append(doc.Infeasible, infeasibleRow{
			ItemID:  inf.ItemID,
			Title:   inf.Title,
			Reason:  inf.Reason,
			Options: opts,
		})
	}
	for key, rep := range res.AECByDate {
		doc.AECByDate[key] = aecRow{
			SEWMinutes:       rep.SEWMinutes,
			MeetingMinutes:   rep.MeetingMinutes,
			ProtectedMinutes: rep.ProtectedMinutes,
			AECMinutes:       rep.AECMinutes,
			EventCount:       rep.EventCount,
			Weekend:          rep.Weekend,
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

// WriteProposalsCSV writes the proposals to w in CSV format.
func WriteProposalsCSV(w io.Writer, props []planner.BlockProposal) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"item_id", "item_title", "lane", "start", "end", "duration_minutes", "confidence", "reason"}); err != nil {
		return err
	}
	for _, p := range props {
		rec := []string{
			p.ItemID,
			p.ItemTitle,
			p.Lane,
			p.Start.Format(time.RFC3339),
			p.End.Format(time.RFC3339),
			strconv.Itoa(p.DurationMinutes),
			strconv.FormatFloat(p.Confidence, 'f', 2, 64),
			p.Reason,
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteAECCSV writes the per-day capacity reports to w in CSV format,
// ordered by date.
func WriteAECCSV(w io.Writer, reports map[string]capacity.AECReport) error {
	keys := make([]string, 0, len(reports))
	for k := range reports {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"date", "sew_minutes", "meeting_minutes", "protected_minutes", "aec_minutes", "event_count", "is_weekend"}); err != nil {
		return err
	}
	for _, k := range keys {
		rep := reports[k]
		rec := []string{
			k,
			strconv.Itoa(rep.SEWMinutes),
			strconv.Itoa(rep.MeetingMinutes),
			strconv.Itoa(rep.ProtectedMinutes),
			strconv.Itoa(rep.AECMinutes),
			strconv.Itoa(rep.EventCount),
			strconv.FormatBool(rep.Weekend),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func toRow(p planner.BlockProposal) proposalRow {
	var alts []string
	for _, a := range p.Alternatives {
		alts = append(alts, a.Format(time.RFC3339))
	}
	return proposalRow{
		ID:              p.ID,
		ItemID:          p.ItemID,
		ItemTitle:       p.ItemTitle,
		Lane:            p.Lane,
		Start:           p.Start.Format(time.RFC3339),
		End:             p.End.Format(time.RFC3339),
		DurationMinutes: p.DurationMinutes,
		Confidence:      p.Confidence,
		Reason:          p.Reason,
		Alternatives:    alts,
	}
}
