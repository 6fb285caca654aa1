package sheets

import (
	"testing"

	"jobtracker/internal/models"
	"jobtracker/internal/store"
)

func TestHeaderIndex(t *testing.T) {
	columns := headerIndex([]interface{}{"Company Name", "Job Title", "Date", "Sender Email", "Status"})

	want := map[string]int{
		"company name": 0,
		"job title":    1,
		"date":         2,
		"sender email": 3,
		"status":       4,
	}
	for name, idx := range want {
		if columns[name] != idx {
			t.Errorf("headerIndex()[%q] = %d, want %d", name, columns[name], idx)
		}
	}
}

func TestRowFromValues(t *testing.T) {
	columns := headerIndex([]interface{}{"Company Name", "Job Title", "Date", "Sender Email", "Status"})

	t.Run("full row", func(t *testing.T) {
		row := rowFromValues(2, columns, []interface{}{"Acme Corp", "Software Engineer", "2024-05-01", "recruiter@acme.com", "Interview"})

		want := store.Row{
			Index:       2,
			Company:     "Acme Corp",
			Title:       "Software Engineer",
			Date:        "2024-05-01",
			SenderEmail: "recruiter@acme.com",
			Status:      "Interview",
		}
		if row != want {
			t.Errorf("rowFromValues() = %+v, want %+v", row, want)
		}
	})

	t.Run("trailing empty cells are trimmed by the API", func(t *testing.T) {
		row := rowFromValues(3, columns, []interface{}{"Beta LLC", "Analyst"})

		if row.Company != "Beta LLC" || row.Title != "Analyst" {
			t.Errorf("rowFromValues() = %+v, want company and title set", row)
		}
		if row.Status != "" || row.SenderEmail != "" {
			t.Errorf("rowFromValues() = %+v, want empty strings for missing cells", row)
		}
	})

	t.Run("reordered columns follow the header", func(t *testing.T) {
		reordered := headerIndex([]interface{}{"Status", "Company Name", "Job Title"})
		row := rowFromValues(2, reordered, []interface{}{"Offer", "Acme Corp", "Software Engineer"})

		if row.Status != "Offer" || row.Company != "Acme Corp" {
			t.Errorf("rowFromValues() = %+v, want header-driven mapping", row)
		}
	})
}

func TestRecordValues(t *testing.T) {
	values := recordValues(models.Record{
		Company:      "Acme Corp",
		Title:        "Software Engineer",
		Status:       "Interview",
		ReceivedDate: "2024-05-01",
		SenderEmail:  "recruiter@acme.com",
	})

	want := []string{"Acme Corp", "Software Engineer", "2024-05-01", "recruiter@acme.com", "Interview"}
	if len(values) != len(want) {
		t.Fatalf("recordValues() returned %d cells, want %d", len(values), len(want))
	}
	for i, w := range want {
		if values[i] != w {
			t.Errorf("recordValues()[%d] = %v, want %q", i, values[i], w)
		}
	}
}
