package models

import "gorm.io/gorm"

// HeroText is the hero copy shown on the landing page.
type HeroText struct {
	gorm.Model
	Heading    string `json:"heading" gorm:"not null"`
	Subheading string `json:"subheading" gorm:"not null"`
}

// StorageRefs returns the storage-reference fields this record owns.
// Hero copy owns none.
func (h *HeroText) StorageRefs() map[string]string {
	return nil
}

// OurRole is the "our role" copy shown on the about page.
type OurRole struct {
	gorm.Model
	Title string `json:"title" gorm:"not null"`
	Body  string `json:"body" gorm:"not null"`
}

// StorageRefs returns the storage-reference fields this record owns.
// Role copy owns none.
func (o *OurRole) StorageRefs() map[string]string {
	return nil
}

// GalleryItem is a single photo in the events gallery.
type GalleryItem struct {
	gorm.Model
	Title       string `json:"title" gorm:"not null"`
	Description string `json:"description" gorm:"not null"`
	ImageRef    string `json:"image_ref" gorm:"not null"`
}

// StorageRefs returns the storage-reference fields this record owns,
// keyed by column name.
func (g *GalleryItem) StorageRefs() map[string]string {
	return map[string]string{"image_ref": g.ImageRef}
}

// Executive is a profile of an executive committee member.
type Executive struct {
	gorm.Model
	Name     string `json:"name" gorm:"not null"`
	Position string `json:"position" gorm:"not null"`
	Bio      string `json:"bio"`
	PhotoRef string `json:"photo_ref" gorm:"not null"`
}

// StorageRefs returns the storage-reference fields this record owns.
func (e *Executive) StorageRefs() map[string]string {
	return map[string]string{"photo_ref": e.PhotoRef}
}

// Testimonial is a member testimonial with an integer rating.
type Testimonial struct {
	gorm.Model
	Author   string `json:"author" gorm:"not null"`
	Quote    string `json:"quote" gorm:"not null"`
	Rating   int    `json:"rating" gorm:"not null"`
	PhotoRef string `json:"photo_ref"`
}

// StorageRefs returns the storage-reference fields this record owns.
func (t *Testimonial) StorageRefs() map[string]string {
	return map[string]string{"photo_ref": t.PhotoRef}
}

// NewsPost is a news article with a cover image and an optional thumbnail.
type NewsPost struct {
	gorm.Model
	Title    string `json:"title" gorm:"not null"`
	Body     string `json:"body" gorm:"not null"`
	CoverRef string `json:"cover_ref" gorm:"not null"`
	ThumbRef string `json:"thumb_ref"`
}

// StorageRefs returns the storage-reference fields this record owns.
func (n *NewsPost) StorageRefs() map[string]string {
	return map[string]string{"cover_ref": n.CoverRef, "thumb_ref": n.ThumbRef}
}

// ContactMessage is a message submitted through the public contact form.
type ContactMessage struct {
	gorm.Model
	Name    string `json:"name" gorm:"not null"`
	Email   string `json:"email" gorm:"not null"`
	Message string `json:"message" gorm:"not null"`
	Relayed bool   `json:"relayed"`
}
