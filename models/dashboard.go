// models/dashboard.go
package models

import "time"

// TodoItem is an entry of a lawyer's to-do list.
type TodoItem struct {
	ID        string    `bson:"id" json:"id"`
	OwnerUID  string    `bson:"owner_uid" json:"ownerUid"`
	Title     string    `bson:"title" json:"title"`
	Priority  string    `bson:"priority,omitempty" json:"priority,omitempty"`
	Done      bool      `bson:"done" json:"done"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}

// Document is a vault entry. Only metadata is stored in this slice.
type Document struct {
	ID         string    `bson:"id" json:"id"`
	OwnerUID   string    `bson:"owner_uid" json:"ownerUid"`
	Name       string    `bson:"name" json:"name"`
	Size       int64     `bson:"size" json:"size"`
	Tag        string    `bson:"tag,omitempty" json:"tag,omitempty"`
	Shared     bool      `bson:"shared" json:"shared"`
	UploadedAt time.Time `bson:"uploaded_at" json:"uploadedAt"`
}

// Review is a client's review of a lawyer.
type Review struct {
	ID         string    `bson:"id" json:"id"`
	LawyerUID  string    `bson:"lawyer_uid" json:"lawyerUid"`
	ClientUID  string    `bson:"client_uid" json:"clientUid"`
	ClientName string    `bson:"client_name" json:"clientName"`
	Rating     int       `bson:"rating" json:"rating"`
	Comment    string    `bson:"comment" json:"comment"`
	CreatedAt  time.Time `bson:"created_at" json:"createdAt"`
}

// Validate enforces the review constraints.
func (r Review) Validate() error {
	if r.Rating < 1 || r.Rating > 5 {
		return &ValidationError{Field: "rating", Message: "Rating must be between 1 and 5"}
	}
	if r.Comment == "" {
		return &ValidationError{Field: "comment", Message: "This field is required"}
	}
	return nil
}
