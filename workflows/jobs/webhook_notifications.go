/*
 * Copyright (c) 2024 The jobkit-go Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package jobs

import (
	sdk "github.com/databricks/databricks-sdk-go/service/jobs"

	"github.com/jobkit-dev/jobkit-go/workflows"
)

// Webhook references one configured notification destination by id.
type Webhook struct {
	workflows.Leaf

	Id string
}

func NewWebhook(id string) *Webhook {
	return &Webhook{Id: id}
}

func (w *Webhook) ToSDK() sdk.Webhook {
	return sdk.Webhook{Id: w.Id}
}

// WebhookNotifications lists the system destinations notified on run
// transitions.
type WebhookNotifications struct {
	OnDurationWarningThresholdExceeded []*Webhook
	OnFailure                          []*Webhook
	OnStart                            []*Webhook
	OnSuccess                          []*Webhook
}

func (n *WebhookNotifications) Children() []workflows.JobNode {
	var children []workflows.JobNode
	for _, w := range n.OnDurationWarningThresholdExceeded {
		children = append(children, w)
	}
	for _, w := range n.OnFailure {
		children = append(children, w)
	}
	for _, w := range n.OnStart {
		children = append(children, w)
	}
	for _, w := range n.OnSuccess {
		children = append(children, w)
	}
	return children
}

func (n *WebhookNotifications) ToSDK() *sdk.WebhookNotifications {
	notifications := &sdk.WebhookNotifications{}
	for _, w := range n.OnDurationWarningThresholdExceeded {
		notifications.OnDurationWarningThresholdExceeded = append(notifications.OnDurationWarningThresholdExceeded, w.ToSDK())
	}
	for _, w := range n.OnFailure {
		notifications.OnFailure = append(notifications.OnFailure, w.ToSDK())
	}
	for _, w := range n.OnStart {
		notifications.OnStart = append(notifications.OnStart, w.ToSDK())
	}
	for _, w := range n.OnSuccess {
		notifications.OnSuccess = append(notifications.OnSuccess, w.ToSDK())
	}
	return notifications
}
