package generate

import (
	"errors"

	"github.com/sirupsen/logrus"
)

// Report logs the outcome of a run as a single entry.
func Report(log logrus.FieldLogger, res Result) {
	entry := log.WithField("state", res.State.String())

	if !res.State.Terminal() {
		entry.WithError(res.Err).Error("QR code generation did not complete")
		return
	}

	switch res.State {
	case StateSaved:
		entry.WithFields(logrus.Fields{
			"url":     res.URL,
			"version": res.Version,
		}).Infof("QR code successfully saved to %s", res.Output.Path)

	case StateAborted:
		entry.Errorf("Invalid URL provided: %s", res.URL)

	case StateFailed:
		var se *StageError
		if errors.As(res.Err, &se) {
			entry = entry.WithField("stage", string(se.Stage))
		}
		entry.WithError(res.Err).Error("An error occurred while generating or saving the QR code")
	}
}
