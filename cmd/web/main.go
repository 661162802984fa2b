// @title           UPSS школьный сайт API
// @version         1.0
// @description     Бэкенд сайта школы: страницы, новости, вакансии и отклики.
// @host            localhost:4000
// @BasePath        /

package main

import "github.com/hredostate/upss-webly/internal/app"

func main() {
	app.Run()
}
