package apiversion

import (
	"strings"

	"github.com/asecurityteam/runhttp"
	"github.com/asecurityteam/settings/v2"
)

// Help generates the environment variable documentation for the runtime.
func Help() string {
	routerGrp, _ := settings.GroupFromComponent(&RouterComponent{})
	rtGrp, _ := settings.GroupFromComponent(&runhttp.Component{})
	return settings.ExampleEnvGroups([]settings.Group{&settings.SettingGroup{
		NameValue:   strings.ToUpper(settingsPrefix),
		GroupValues: []settings.Group{routerGrp, rtGrp},
	}})
}
