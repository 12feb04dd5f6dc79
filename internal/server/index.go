package server

import (
	"fmt"
	"net/http"

	"github.com/edamos/emrp/pkg/resonance"
)

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	custom := resonance.Score(s.scenario.Custom())
	planet, _ := s.scenario.FieldRun()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintf(w, `<!DOCTYPE html>
<html><head><title>EMRP Simulator</title></head>
<body style="margin:0 auto;max-width:720px;background:#111;color:#eee;font-family:system-ui;padding:2rem">
<h1>EMRP Magneto-Habitability Simulator</h1>

<h2>Home</h2>
<p>Custom environment (%.2f Hz, EMF %.2f, env %.2f):</p>
<ul>
<li>MCI: <b>%.2f</b> &mdash; alignment with the 7.83 Hz Schumann resonance</li>
<li>BVI: <b>%.2f</b> &mdash; life-support potential derived from MCI&sup2;</li>
<li>HS: <b>%.2f</b> &mdash; combined habitability score</li>
</ul>
<p>Resonance table: <a href="/api/resonance">/api/resonance</a>.
Field runs (planet %s): POST <code>/api/simulate</code>, log at <a href="/api/session">/api/session</a>.</p>

<h2>Charts</h2>
<ul>
<li><a href="/charts/comparison">Bar comparison of MCI, BVI, HS</a></li>
<li><a href="/charts/lines">Score line chart</a></li>
<li><a href="/charts/radar">Radar of the latest simulation</a></li>
</ul>

<h2>Download</h2>
<ul>
<li><a href="/export/resonance.csv">Comparison table CSV</a> / <a href="/export/resonance.xlsx">XLSX</a></li>
<li><a href="/export/session.csv">All simulations CSV</a> / <a href="/export/session.xlsx">XLSX</a></li>
<li><a href="/export/report.pdf">PDF report of the latest simulation</a></li>
</ul>

<h2>About</h2>
<p>The EMRP model scores habitability from magnetic alignment:
MCI = (1 - |f - 7.83| / 2.5) &times; (1 - EMF), BVI = MCI&sup2;,
HS = 0.5&middot;MCI + 0.4&middot;BVI + 0.1&middot;env.</p>
</body></html>`,
		custom.Frequency, custom.EMF, custom.EnvFactor,
		custom.MCI, custom.BVI, custom.HS, planet)
}
