package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAppendWorkLogKeepsOrder(t *testing.T) {
	c := &Complaint{Title: "Broken streetlight", Status: ComplaintStatusOpen}

	now := time.Now()
	c.AppendWorkLog(WorkLogEntry{Progress: 10, Note: "dispatched", By: "Aisha", At: now})
	c.AppendWorkLog(WorkLogEntry{Progress: 60, Note: "on site", By: "Aisha", At: now.Add(time.Hour)})
	c.AppendWorkLog(WorkLogEntry{Progress: 100, Note: "replaced bulb", By: "Aisha", At: now.Add(2 * time.Hour)})

	assert.Len(t, c.WorkLog, 3)
	assert.Equal(t, "dispatched", c.WorkLog[0].Note)
	assert.Equal(t, "on site", c.WorkLog[1].Note)
	assert.Equal(t, "replaced bulb", c.WorkLog[2].Note)
}

func TestAppendWorkLogMirrorsProgress(t *testing.T) {
	c := &Complaint{}

	c.AppendWorkLog(WorkLogEntry{Progress: 40, Note: "started"})
	assert.Equal(t, 40, c.Progress)

	// the last entry wins, even if progress goes down
	c.AppendWorkLog(WorkLogEntry{Progress: 20, Note: "rework needed"})
	assert.Equal(t, 20, c.Progress)
}
