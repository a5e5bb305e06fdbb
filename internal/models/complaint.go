package models

import (
	"time"

	"gorm.io/datatypes"
)

// WorkLogEntry is one progress annotation on a complaint. The work log
// is append-only: entries are never rewritten or reordered.
type WorkLogEntry struct {
	Progress int       `json:"progress"`
	Note     string    `json:"note"`
	By       string    `json:"by"`
	At       time.Time `json:"at"`
}

// Attachment is stored metadata for one uploaded file.
type Attachment struct {
	URL  string `json:"url"`
	Type string `json:"type"` // image, video or file, from the MIME prefix
	Name string `json:"name"` // original filename
}

type Complaint struct {
	BaseModel
	Title       string            `gorm:"not null" json:"title"`
	Description string            `gorm:"type:text" json:"description"`
	Category    string            `json:"category"`
	Priority    ComplaintPriority `gorm:"type:varchar(10);default:'Medium'" json:"priority"`
	Status      ComplaintStatus   `gorm:"type:varchar(20);default:'Open'" json:"status"`

	// Denormalized references, no foreign keys.
	UserID       string `gorm:"index;not null" json:"userId"`
	UserName     string `json:"userName"`
	Organization string `gorm:"index" json:"organization"`

	AssignedWorkerName string `json:"assignedWorkerName,omitempty"`
	Progress           int    `gorm:"default:0" json:"progress"`

	WorkLog     datatypes.JSONSlice[WorkLogEntry] `json:"workLog"`
	Attachments datatypes.JSONSlice[Attachment]   `json:"attachments"`

	// Optimistic concurrency counter, incremented on every update.
	Version int `gorm:"default:1" json:"version"`
}

// AppendWorkLog adds an entry to the end of the work log and mirrors
// progress onto the complaint.
func (c *Complaint) AppendWorkLog(entry WorkLogEntry) {
	c.WorkLog = append(c.WorkLog, entry)
	c.Progress = entry.Progress
}
