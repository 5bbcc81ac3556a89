package service

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strconv"
	"strings"

	"JobTracker/internal/modules/application/domain/entity"
)

var csvHeader = []string{
	"Company", "Position", "Status", "Priority", "Platform", "Job Type",
	"Salary Min", "Salary Max", "Location", "Applied Date", "Follow Up Date",
	"Recruiter Name", "Recruiter Email", "Recruiter Phone", "Job Link",
	"Resume Version", "Tags", "Notes", "Archived", "Interviews",
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func intString(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func encodeCSV(list []*entity.Application) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}
	for _, app := range list {
		applied := app.AppliedDate
		row := []string{
			app.CompanyName,
			app.PositionTitle,
			string(app.Status),
			string(app.Priority),
			string(app.Platform),
			string(app.JobType),
			intString(app.SalaryMin),
			intString(app.SalaryMax),
			deref(app.Location),
			formatTime(&applied),
			formatTime(app.FollowUpDate),
			deref(app.RecruiterName),
			deref(app.RecruiterEmail),
			deref(app.RecruiterPhone),
			deref(app.JobLink),
			deref(app.ResumeVersion),
			strings.Join(app.Tags, ";"),
			deref(app.Notes),
			strconv.FormatBool(app.Archived),
			strconv.Itoa(len(app.Interviews)),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

func encodeJSON(list []*entity.Application) ([]byte, error) {
	if list == nil {
		list = []*entity.Application{}
	}
	return json.MarshalIndent(list, "", "  ")
}
