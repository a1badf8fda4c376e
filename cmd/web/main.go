// @title           ONLYFAME API
// @version         1.0
// @description     Кастинг-платформа: актеры, кастинг-директора, кастинги и отклики.
// @contact.name    ONLYFAME
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:8080
// @BasePath        /

package main

import (
	"onlyfame_backend/internal/app"

	_ "onlyfame_backend/docs"
)

func main() {
	app.Run()
}
