package cli

import "errors"

var errServicesNotConfigured = errors.New("trip services not configured")
