package rscpal

import (
	"fmt"

	"github.com/hausenergie/librscp-go/base"
	"github.com/hausenergie/librscp-go/tags"
)

// Authenticate presents the configured credentials and stores the granted
// user level. A refusal comes back as ErrAuthenticationFailed and leaves the
// session connected, so corrected credentials can be tried on the same link.
func (d *rscpal) Authenticate() (base.UserLevel, error) {
	d.mtx.Lock()
	defer d.mtx.Unlock()

	if d.state != stateconnected && d.state != stateauthenticated {
		return base.UserLevelNotAuthorized, base.ErrNotOpened
	}

	req := NewFrame(Item{
		Tag: tags.RscpAuthentication,
		Value: Container(
			Item{Tag: tags.RscpAuthenticationUser, Value: CString(d.settings.username)},
			Item{Tag: tags.RscpAuthenticationPassword, Value: CString(d.settings.password)},
		),
	})

	// Temporarily suppress logging for all layers when sending confidential data
	sup := d.logstate(false)
	if sup {
		d.dlogf("Authentication request for %s, credentials not logged", d.settings.username)
	}
	rsp, err := d.exchangeframe(req, !sup)
	d.logstate(true)
	if err != nil {
		return base.UserLevelNotAuthorized, err
	}

	d.level = base.UserLevelNotAuthorized
	d.state = stateconnected
	v, err := rsp.Value(tags.RscpAuthentication)
	if err != nil {
		return base.UserLevelNotAuthorized, fmt.Errorf("%w: %v", ErrAuthenticationFailed, err)
	}
	lv, err := v.AsUChar8()
	if err != nil {
		return base.UserLevelNotAuthorized, fmt.Errorf("%w: %v", ErrAuthenticationFailed, err)
	}
	level := base.UserLevel(lv)
	if level == base.UserLevelNotAuthorized {
		return base.UserLevelNotAuthorized, fmt.Errorf("%w: controller grants %v", ErrAuthenticationFailed, level)
	}
	d.level = level
	d.state = stateauthenticated
	d.logf("Authenticated as %s with level %v", d.settings.username, level)
	return level, nil
}
