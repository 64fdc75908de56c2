package alerts

import (
	"errors"
	"fmt"
)

var (
	ErrDispatch          = errors.New("alert dispatch failed")
	ErrOverview          = errors.New("instance overview unavailable")
	errInvalidJSON       = fmt.Errorf("invalid JSON generated")
	errWebhookStatus     = fmt.Errorf("webhook returned non-2xx status")
	errWebhookNoURL      = fmt.Errorf("webhook has no target URL")
	errTemplateParse     = fmt.Errorf("template parsing failed")
	errTemplateExecution = fmt.Errorf("template execution failed")
	errNoRecipient       = fmt.Errorf("no email recipient")
	errEmailSend         = fmt.Errorf("failed to send alert email")
	errNATSPublish       = fmt.Errorf("failed to publish alert")
)
