package types

import "time"

// UserRecordID is the fixed primary key of the singleton user record. At most
// one user record ever exists in a store.
const UserRecordID = "local-user"

// User is the singleton profile record for the signed-in user.
type User struct {
	UserName       string
	Email          string
	ProfilePicture string // base64 payload or URI, optional
	LastOpened     time.Time
	Preferences    Preferences
}

// Preferences holds per-user settings embedded in the user record. Saving
// merges field by field with the stored values rather than replacing the
// whole block.
type Preferences struct {
	JSONUploadEnabled    bool   `json:"jsonUploadEnabled"`
	NotificationsEnabled bool   `json:"notificationsEnabled"`
	Theme                string `json:"theme,omitempty"`
}

// PreferencesPatch carries the preference fields a save wants to change.
// Nil fields keep their stored values.
type PreferencesPatch struct {
	JSONUploadEnabled    *bool
	NotificationsEnabled *bool
	Theme                *string
}

// Apply merges the patch into the preferences, field by field.
func (p PreferencesPatch) Apply(prefs *Preferences) {
	if p.JSONUploadEnabled != nil {
		prefs.JSONUploadEnabled = *p.JSONUploadEnabled
	}
	if p.NotificationsEnabled != nil {
		prefs.NotificationsEnabled = *p.NotificationsEnabled
	}
	if p.Theme != nil {
		prefs.Theme = *p.Theme
	}
}

// UserPatch lists the user fields a save may touch. Nil fields are left
// unchanged; Preferences merges per-field through PreferencesPatch.
type UserPatch struct {
	UserName       *string
	Email          *string
	ProfilePicture *string
	LastOpened     *time.Time
	Preferences    *PreferencesPatch
}

// Apply merges the patch into the user record.
func (p UserPatch) Apply(u *User) {
	if p.UserName != nil {
		u.UserName = *p.UserName
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.ProfilePicture != nil {
		u.ProfilePicture = *p.ProfilePicture
	}
	if p.LastOpened != nil {
		u.LastOpened = *p.LastOpened
	}
	if p.Preferences != nil {
		p.Preferences.Apply(&u.Preferences)
	}
}
