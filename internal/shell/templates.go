package shell

import (
	"html/template"
	"io"

	"github.com/labstack/echo/v4"
)

// Views are deliberately plain: the shell exists to drive the client and the
// guards, not to be a frontend.
const pageTemplates = `
{{define "layout_head"}}<!doctype html>
<html><head><meta charset="utf-8"><title>ParkMate</title></head><body>
<h1>ParkMate</h1>
{{if .Error}}<p class="error">{{.Error}}</p>{{end}}
{{end}}

{{define "layout_foot"}}</body></html>{{end}}

{{define "login"}}{{template "layout_head" .}}
<h2>Sign in</h2>
<form method="post" action="/login">
  <input name="username" placeholder="username" required>
  <input name="password" type="password" placeholder="password" required>
  <button type="submit">Sign in</button>
</form>
<p><a href="/register">Create an account</a></p>
{{template "layout_foot" .}}{{end}}

{{define "register"}}{{template "layout_head" .}}
<h2>Create account</h2>
<form method="post" action="/register">
  <input name="username" placeholder="username" required>
  <input name="password" type="password" placeholder="password" required>
  <input name="email" type="email" placeholder="email" required>
  <input name="phone" placeholder="phone">
  <button type="submit">Register</button>
</form>
{{template "layout_foot" .}}{{end}}

{{define "admin"}}{{template "layout_head" .}}
<h2>Admin dashboard</h2>
<form method="post" action="/logout"><button type="submit">Sign out</button></form>
{{with .Dashboard}}
<p>{{.TotalLots}} lots, {{.OccupiedSpots}}/{{.TotalSpots}} spots occupied,
{{.ActiveReservations}} active reservations, {{.TotalUsers}} users.</p>
{{end}}
<table border="1">
<tr><th>Lot</th><th>Address</th><th>Price</th><th>Available</th></tr>
{{range .Lots}}<tr><td>{{.PrimeLocationName}}</td><td>{{.Address}}</td><td>{{.Price}}</td><td>{{.AvailableSpots}}/{{.TotalSpots}}</td></tr>{{end}}
</table>
{{template "layout_foot" .}}{{end}}

{{define "dashboard"}}{{template "layout_head" .}}
<h2>Your dashboard</h2>
<form method="post" action="/logout"><button type="submit">Sign out</button></form>
<h3>Available lots</h3>
<table border="1">
<tr><th>Lot</th><th>Address</th><th>Price</th><th>Available</th><th></th></tr>
{{range .Lots}}<tr><td>{{.PrimeLocationName}}</td><td>{{.Address}}</td><td>{{.Price}}</td><td>{{.AvailableSpots}}</td>
<td><form method="post" action="/reserve"><input type="hidden" name="lot_id" value="{{.ID}}"><button type="submit">Reserve</button></form></td></tr>{{end}}
</table>
<h3>Your reservations</h3>
<table border="1">
<tr><th>ID</th><th>Lot</th><th>Spot</th><th>Status</th></tr>
{{range .Reservations}}<tr><td>{{.ID}}</td><td>{{.PrimeLocationName}}</td><td>{{.SpotNumber}}</td><td>{{.Status}}</td></tr>{{end}}
</table>
{{template "layout_foot" .}}{{end}}
`

type renderer struct {
	templates *template.Template
}

func newRenderer() *renderer {
	return &renderer{templates: template.Must(template.New("shell").Parse(pageTemplates))}
}

func (r *renderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}
