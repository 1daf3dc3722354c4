package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/donaldgifford/msp-alert-engine/internal/engine"
	domain "github.com/donaldgifford/msp-alert-engine/pkg/types"
)

const timeLayout = "2006-01-02 15:04:05"

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

func printRuleTable(w io.Writer, rules []domain.AlertRule) error {
	tw := newTabWriter(w)
	tw.writef("ID\tNAME\tSEVERITY\tSCOPE\tCONDITION\tACTIVE\tTRIGGERS\n")
	for i := range rules {
		r := &rules[i]
		tw.writef("%s\t%s\t%s\t%s\t%s\t%v\t%d\n",
			r.ID,
			truncate(r.Name, 30),
			r.Severity,
			ruleScope(r),
			r.Condition.String(),
			r.IsActive,
			r.TriggerCount,
		)
	}
	return tw.finish()
}

func printRuleDetail(w io.Writer, r *domain.AlertRule) error {
	tw := newTabWriter(w)
	tw.writef("ID:\t%s\n", r.ID)
	tw.writef("Tenant:\t%s\n", r.TenantID)
	tw.writef("Name:\t%s\n", r.Name)
	if r.AlertType != "" {
		tw.writef("Type:\t%s\n", r.AlertType)
	}
	tw.writef("Severity:\t%s\n", r.Severity)
	tw.writef("Scope:\t%s\n", ruleScope(r))
	tw.writef("Condition:\t%s\n", r.Condition.String())
	tw.writef("Active:\t%v\n", r.IsActive)
	if r.Deleted {
		tw.writef("Deleted:\ttrue\n")
	}
	tw.writef("Triggers:\t%d\n", r.TriggerCount)
	tw.writef("Last Triggered:\t%s\n", formatTime(r.LastTriggered))
	return tw.finish()
}

func ruleScope(r *domain.AlertRule) string {
	if r.IsGlobal() {
		return "global"
	}
	return "device " + *r.DeviceID
}

func printPolicyTable(w io.Writer, policies []domain.EscalationPolicy) error {
	tw := newTabWriter(w)
	tw.writef("ID\tNAME\tSEVERITIES\tAFTER\tSTEPS\tENABLED\n")
	for i := range policies {
		p := &policies[i]
		tw.writef("%s\t%s\t%s\t%dm\t%d\t%v\n",
			p.ID,
			truncate(p.Name, 30),
			joinSeverities(p.TriggerSeverities),
			p.TriggerAfterMinutes,
			len(p.Steps),
			p.Enabled,
		)
	}
	return tw.finish()
}

func printPolicyDetail(w io.Writer, p *domain.EscalationPolicy) error {
	tw := newTabWriter(w)
	tw.writef("ID:\t%s\n", p.ID)
	tw.writef("Tenant:\t%s\n", p.TenantID)
	tw.writef("Name:\t%s\n", p.Name)
	tw.writef("Severities:\t%s\n", joinSeverities(p.TriggerSeverities))
	tw.writef("Trigger After:\t%dm\n", p.TriggerAfterMinutes)
	tw.writef("Enabled:\t%v\n", p.Enabled)
	tw.writef("\nSTEP\tWAIT\tROLES\tCHANNELS\n")
	for _, s := range p.OrderedSteps() {
		chs := make([]string, 0, 3)
		for _, ch := range s.Channels() {
			chs = append(chs, string(ch))
		}
		tw.writef("%d\t%dm\t%s\t%s\n",
			s.Order,
			s.WaitMinutesAfterPrevious,
			strings.Join(s.Roles, ","),
			strings.Join(chs, ","),
		)
	}
	return tw.finish()
}

func joinSeverities(sevs []domain.Severity) string {
	out := make([]string, len(sevs))
	for i, s := range sevs {
		out[i] = string(s)
	}
	return strings.Join(out, ",")
}

func printAlertTable(w io.Writer, alerts []domain.AlertInstance) error {
	tw := newTabWriter(w)
	tw.writef("ID\tDEVICE\tSEVERITY\tSTATUS\tMETRIC\tVALUE\tTRIGGERED\n")
	for i := range alerts {
		a := &alerts[i]
		tw.writef("%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			a.ID,
			a.DeviceID,
			a.Severity,
			a.Status,
			a.MetricName,
			domain.FormatValue(a.MetricValue),
			a.TriggeredAt.Format(timeLayout),
		)
	}
	return tw.finish()
}

func printAlertDetail(w io.Writer, a *domain.AlertInstance) error {
	tw := newTabWriter(w)
	tw.writef("ID:\t%s\n", a.ID)
	tw.writef("Tenant:\t%s\n", a.TenantID)
	tw.writef("Device:\t%s\n", a.DeviceID)
	tw.writef("Rule:\t%s\n", a.RuleID)
	tw.writef("Severity:\t%s\n", a.Severity)
	tw.writef("Status:\t%s\n", a.Status)
	tw.writef("Message:\t%s\n", a.Message)
	tw.writef("Value:\t%s (threshold %s)\n",
		domain.FormatValue(a.MetricValue), domain.FormatValue(a.ThresholdValue))
	tw.writef("Triggered:\t%s\n", a.TriggeredAt.Format(timeLayout))
	if a.AcknowledgedAt != nil {
		tw.writef("Acknowledged:\t%s by %s\n", a.AcknowledgedAt.Format(timeLayout), a.AcknowledgedBy)
	}
	if a.ResolvedAt != nil {
		tw.writef("Resolved:\t%s by %s\n", a.ResolvedAt.Format(timeLayout), a.ResolvedBy)
	}
	return tw.finish()
}

func printEscalations(w io.Writer, states []domain.EscalationState, dispatches []domain.EscalationDispatch) error {
	tw := newTabWriter(w)
	tw.writef("POLICY\tSTATE\tLAST STEP\tLAST EXECUTED\tNEXT DUE\n")
	for i := range states {
		s := &states[i]
		tw.writef("%s\t%s\t%d\t%s\t%s\n",
			s.PolicyID,
			s.State,
			s.LastExecutedStep,
			formatTime(s.LastExecutedAt),
			formatTime(s.NextDueAt),
		)
	}
	if len(dispatches) > 0 {
		tw.writef("\nPOLICY\tSTEP\tCHANNEL\tRECIPIENTS\tSTATUS\tERROR\n")
		for i := range dispatches {
			d := &dispatches[i]
			tw.writef("%s\t%d\t%s\t%d\t%s\t%s\n",
				d.PolicyID,
				d.Step,
				d.Channel,
				d.Recipients,
				d.Status,
				truncate(d.ErrorText, 40),
			)
		}
	}
	return tw.finish()
}

func printDeviceTable(w io.Writer, devices []domain.Device) error {
	tw := newTabWriter(w)
	tw.writef("ID\tTENANT\tHOSTNAME\tLAST SEEN\n")
	for i := range devices {
		d := &devices[i]
		tw.writef("%s\t%s\t%s\t%s\n", d.ID, d.TenantID, d.Hostname, formatTime(d.LastSeenAt))
	}
	return tw.finish()
}

func printMemberTable(w io.Writer, members []domain.RoleMember) error {
	tw := newTabWriter(w)
	tw.writef("ID\tROLE\tNAME\tEMAIL\tPHONE\tREALTIME\n")
	for i := range members {
		m := &members[i]
		tw.writef("%s\t%s\t%s\t%s\t%s\t%s\n",
			m.ID, m.Role, m.Name, dash(m.Email), dash(m.Phone), dash(m.RealtimeChannel))
	}
	return tw.finish()
}

func printIngestResult(w io.Writer, r *engine.IngestResult) error {
	tw := newTabWriter(w)
	tw.writef("Device:\t%s\n", r.DeviceID)
	tw.writef("Accepted:\t%d\n", r.Accepted)
	tw.writef("Fired:\t%d\n", r.Fired)
	for i := range r.Alerts {
		a := &r.Alerts[i]
		tw.writef("  %s\t%s\t%s\n", a.ID, a.Severity, a.Message)
	}
	return tw.finish()
}

func printJobRunsTable(w io.Writer, runs []domain.JobRun) error {
	tw := newTabWriter(w)
	tw.writef("JOB\tSTATUS\tSTARTED\tCOMPLETED\tROWS\tERROR\n")
	for i := range runs {
		r := &runs[i]
		rows := "-"
		if r.RowsAffected != nil {
			rows = strconv.Itoa(*r.RowsAffected)
		}
		tw.writef("%s\t%s\t%s\t%s\t%s\t%s\n",
			r.JobName,
			r.Status,
			r.StartedAt.Format(timeLayout),
			formatTime(r.CompletedAt),
			rows,
			truncate(r.ErrorText, 40),
		)
	}
	return tw.finish()
}

func outputJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func formatTime(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Format(timeLayout)
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
