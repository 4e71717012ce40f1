/*
Copyright 2025 Passbook Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package notification

import (
	"github.com/sirupsen/logrus"

	"github.com/dev-ashishk/passbook/config"
)

// NotifyError is the single funnel for unexpected failures. It reports the
// error with the project name attached when configuration is available and
// falls back to a bare log line when it is not.
func NotifyError(systemError error) {
	conf, err := config.Fetch()
	if err != nil {
		logrus.Error(systemError)
		return
	}
	logrus.WithField("project", conf.ProjectName).Error(systemError)
}
