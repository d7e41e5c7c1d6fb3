package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/koder-native/kterm/internal/application/port"
	"github.com/koder-native/kterm/internal/domain/entity"
	"github.com/koder-native/kterm/internal/domain/repository"
	"github.com/koder-native/kterm/internal/logging"
)

// InspectSessionUseCase reports what a restore of the stored session would
// do, without creating any content.
type InspectSessionUseCase struct {
	stateRepo repository.SessionStateRepository
	fs        port.FileSystem
}

// NewInspectSessionUseCase creates a new inspect use case.
func NewInspectSessionUseCase(stateRepo repository.SessionStateRepository, fs port.FileSystem) *InspectSessionUseCase {
	return &InspectSessionUseCase{stateRepo: stateRepo, fs: fs}
}

// SessionReport summarises a stored session.
type SessionReport struct {
	Document *entity.SessionDocument
	// Tabs and Panes count what would be restored.
	Tabs  int
	Panes int
	// Issues lists every place where restore deviates from the document.
	Issues []string
}

// Fresh reports whether restore would ignore the document and open a
// single terminal.
func (r *SessionReport) Fresh() bool {
	return r.Tabs == 0
}

// Execute loads the session and walks it with the restore rules. A missing
// session returns repository.ErrSessionNotFound; an unreadable one returns
// the parse error.
func (uc *InspectSessionUseCase) Execute(ctx context.Context) (*SessionReport, error) {
	doc, err := uc.stateRepo.Load(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("load session: %w", err)
	}
	if doc == nil {
		return nil, repository.ErrSessionNotFound
	}

	report := &SessionReport{Document: doc}
	if doc.Width <= 0 || doc.Height <= 0 {
		report.Issues = append(report.Issues,
			fmt.Sprintf("window size %dx%d is not positive; %dx%d used",
				doc.Width, doc.Height, entity.DefaultWindowWidth, entity.DefaultWindowHeight))
	}

	for i, snap := range doc.Tabs {
		panes := uc.inspectNode(ctx, report, fmt.Sprintf("tab %d", i), snap)
		if panes == 0 {
			report.Issues = append(report.Issues, fmt.Sprintf("tab %d has no restorable panes and is dropped", i))
			continue
		}
		report.Tabs++
		report.Panes += panes
	}

	switch {
	case report.Tabs == 0:
		report.Issues = append(report.Issues, "no restorable tabs; a fresh terminal opens instead")
	case doc.ActiveTab < 0 || doc.ActiveTab >= report.Tabs:
		report.Issues = append(report.Issues,
			fmt.Sprintf("active_tab %d is out of range; tab 0 is shown", doc.ActiveTab))
	}

	logging.FromContext(ctx).Debug().
		Int("tabs", report.Tabs).
		Int("panes", report.Panes).
		Int("issues", len(report.Issues)).
		Msg("session inspected")
	return report, nil
}

// inspectNode returns the number of panes restore would create for snap.
func (uc *InspectSessionUseCase) inspectNode(ctx context.Context, report *SessionReport, at string, snap *entity.NodeSnapshot) int {
	if snap == nil {
		return 0
	}
	if snap.IsSplit() {
		start := uc.inspectNode(ctx, report, at+".start", snap.Start)
		end := uc.inspectNode(ctx, report, at+".end", snap.End)
		if (start == 0) != (end == 0) {
			report.Issues = append(report.Issues, fmt.Sprintf("%s: split has one empty side and collapses", at))
		}
		if snap.Position < 0 {
			report.Issues = append(report.Issues, fmt.Sprintf("%s: negative position reset to an even split", at))
		}
		return start + end
	}

	if _, known := entity.ParsePaneKind(snap.Type); !known {
		report.Issues = append(report.Issues, fmt.Sprintf("%s: unknown type %q restored as terminal", at, snap.Type))
	}

	token := snap.Token()
	switch snap.Kind() {
	case entity.KindBrowser:
		if token == "" {
			report.Issues = append(report.Issues, fmt.Sprintf("%s: browser without url opens %s", at, entity.DefaultBrowserURL))
		}
	default:
		if uc.fs == nil {
			break
		}
		if token == "" {
			report.Issues = append(report.Issues, fmt.Sprintf("%s: no directory recorded; home used", at))
			break
		}
		if ok, err := uc.fs.IsDirectory(ctx, token); err != nil || !ok {
			report.Issues = append(report.Issues, fmt.Sprintf("%s: %s is not an accessible directory; home used", at, token))
		}
	}
	return 1
}
