package workflow

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	appErrors "github.com/amlds-dept/activity-reporter/pkg/errors"
)

// ActivityAware sections receive the current activity identifier when it is
// broadcast after the first general-info save.
type ActivityAware interface {
	SetActivityID(activityID int64)
}

// Loadable sections can refresh their state from the store.
type Loadable interface {
	Load(ctx context.Context, activityID int64) error
}

// Savable sections can persist their captured state.
type Savable interface {
	Save(ctx context.Context) error
}

// ActivityContext holds the identifier of the activity being captured. It is
// passed explicitly to whoever needs it; there is no ambient global.
type ActivityContext struct {
	activityID int64
}

// ActivityID returns the current identifier, zero before the first save.
func (c *ActivityContext) ActivityID() int64 {
	return c.activityID
}

// Controller orchestrates section-by-section capture. A single section is
// active at a time; navigation and broadcasts run on the interaction thread.
type Controller struct {
	actx     *ActivityContext
	current  Section
	sections map[Section]any
	logger   *zap.Logger

	lastBroadcast int64
}

// NewController starts the workflow at the general-info section.
func NewController(logger *zap.Logger) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller{
		actx:     &ActivityContext{},
		current:  SectionGeneralInfo,
		sections: make(map[Section]any),
		logger:   logger,
	}
}

// Context exposes the shared activity context.
func (c *Controller) Context() *ActivityContext {
	return c.actx
}

// Current returns the active section.
func (c *Controller) Current() Section {
	return c.current
}

// Register attaches a section form to the workflow.
func (c *Controller) Register(section Section, form any) error {
	if !section.Known() {
		return fmt.Errorf("unknown section %q", section)
	}
	c.sections[section] = form
	return nil
}

// Navigate moves to the target section. Leaving general info is refused
// until the parent activity record has been durably created; every other
// transition is unrestricted. Loadable targets are refreshed on entry.
func (c *Controller) Navigate(ctx context.Context, to Section) error {
	if !to.Known() {
		return fmt.Errorf("unknown section %q", to)
	}
	if c.current == SectionGeneralInfo && to != SectionGeneralInfo && c.actx.ActivityID() == 0 {
		return appErrors.Clone(appErrors.ErrValidation, "save general information before moving to other sections")
	}

	c.current = to
	c.logger.Sugar().Debugw("section changed", "section", to)

	if form, ok := c.sections[to]; ok && c.actx.ActivityID() != 0 {
		if loadable, ok := form.(Loadable); ok {
			if err := loadable.Load(ctx, c.actx.ActivityID()); err != nil {
				return appErrors.Wrap(err, appErrors.KindPersistence, appErrors.ErrPersistence.Code, fmt.Sprintf("failed to load %s", to.Title()))
			}
		}
	}
	return nil
}

// Broadcast propagates a newly assigned activity identifier to every
// registered section, synchronously and in section order. Repeating the same
// identifier is a no-op, so a save may broadcast without bookkeeping.
func (c *Controller) Broadcast(activityID int64) {
	if activityID == 0 || activityID == c.lastBroadcast {
		return
	}
	c.actx.activityID = activityID
	for _, section := range SectionOrder {
		form, ok := c.sections[section]
		if !ok {
			continue
		}
		if aware, ok := form.(ActivityAware); ok {
			aware.SetActivityID(activityID)
		}
	}
	c.lastBroadcast = activityID
	c.logger.Sugar().Infow("activity id broadcast", "activity_id", activityID)
}

// SaveCurrent persists the active section when it supports saving.
func (c *Controller) SaveCurrent(ctx context.Context) error {
	form, ok := c.sections[c.current]
	if !ok {
		return nil
	}
	savable, ok := form.(Savable)
	if !ok {
		return nil
	}
	return savable.Save(ctx)
}
