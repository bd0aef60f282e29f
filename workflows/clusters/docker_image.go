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

package clusters

import (
	"github.com/databricks/databricks-sdk-go/service/compute"

	"github.com/jobkit-dev/jobkit-go/workflows"
)

// DockerBasicAuth holds registry credentials for a custom cluster image.
type DockerBasicAuth struct {
	workflows.Leaf

	Username string
	Password string
}

func (a *DockerBasicAuth) ToSDK() *compute.DockerBasicAuth {
	return &compute.DockerBasicAuth{
		Username: a.Username,
		Password: a.Password,
	}
}

// DockerImage selects a custom container image for cluster nodes.
type DockerImage struct {
	Url       string
	BasicAuth *DockerBasicAuth
}

func NewDockerImage(url string) *DockerImage {
	return &DockerImage{Url: url}
}

func (d *DockerImage) Children() []workflows.JobNode {
	var children []workflows.JobNode
	if d.BasicAuth != nil {
		children = append(children, d.BasicAuth)
	}
	return children
}

func (d *DockerImage) ToSDK() *compute.DockerImage {
	image := &compute.DockerImage{Url: d.Url}
	if d.BasicAuth != nil {
		image.BasicAuth = d.BasicAuth.ToSDK()
	}
	return image
}
