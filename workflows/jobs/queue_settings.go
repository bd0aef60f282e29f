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

// QueueSettings controls whether runs beyond the concurrency limit queue
// instead of being skipped.
type QueueSettings struct {
	workflows.Leaf

	Enabled bool
}

func (q *QueueSettings) ToSDK() *sdk.QueueSettings {
	return &sdk.QueueSettings{Enabled: q.Enabled}
}

// JobRunAs names the identity runs execute under. At most one of the two
// fields is expected to be set.
type JobRunAs struct {
	workflows.Leaf

	ServicePrincipalName string
	UserName             string
}

func (r *JobRunAs) ToSDK() *sdk.JobRunAs {
	return &sdk.JobRunAs{
		ServicePrincipalName: r.ServicePrincipalName,
		UserName:             r.UserName,
	}
}
