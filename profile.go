package newsgrab

// Profile bundles the per-field selector lists for one hostname. Each list
// is ordered: the extraction precedence policy (last match wins for text
// fields, first match wins for the image) is defined by the consumer.
// Profiles are immutable after startup and shared across requests.
type Profile struct {
	// Article locates list-page containers holding article links.
	Article []string

	Title  []string
	Author []string
	Date   []string
	Image  []string
}

// Validate returns an error if any selector list is empty. Every registered
// profile must populate all five lists, duplicating the default profile's
// entries where a host needs nothing special.
func (p *Profile) Validate() error {
	if len(p.Article) == 0 {
		return Errorf(EINVALID, "article selectors required")
	}
	if len(p.Title) == 0 {
		return Errorf(EINVALID, "title selectors required")
	}
	if len(p.Author) == 0 {
		return Errorf(EINVALID, "author selectors required")
	}
	if len(p.Date) == 0 {
		return Errorf(EINVALID, "date selectors required")
	}
	if len(p.Image) == 0 {
		return Errorf(EINVALID, "image selectors required")
	}
	return nil
}

// ProfileRegistry maps hostnames to selector profiles.
type ProfileRegistry interface {
	// ProfileFor returns the profile registered for host, or the default
	// profile when the host is unknown. Never returns nil.
	ProfileFor(host string) *Profile
}
