package main

import "github.com/killallgit/podcast-browser/cmd"

// @title           Podcast Browser API
// @version         1.0.0
// @description     Best podcasts list served from a single observable list state, with route tokens that open the details screen.
// @contact.name    API Support
// @contact.url     https://github.com/killallgit/podcast-browser
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:8080
// @BasePath        /
// @schemes         http https
func main() {
	cmd.Execute()
}
