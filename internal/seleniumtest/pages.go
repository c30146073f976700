package seleniumtest

import (
	"fmt"
	"net/http"
)

var homePage = `
<html>
<head>
	<title>Support Test Suite</title>
	<style>
		.panel { border: 1px solid #ccc; margin: 4px; }
		#spacer { height: 3000px; }
	</style>
</head>
<body>
	<form action="/" id="signup">
		<input id="name" name="name" value="old" />
		<input id="formula" name="formula" />
		<input id="plan-basic" type="radio" name="plan" value="basic" /> Basic
		<input id="plan-pro" type="radio" name="plan" value="pro" /> Pro
		<input id="terms" type="checkbox" /> Terms
		<input id="locked" disabled="true" value="locked" />

		<select id="fruit" name="fruit">
			<option value="a">Apple</option>
			<option value="b">Banana</option>
			<option value="c">Cherry</option>
		</select>
		<select id="colours" name="colours" multiple>
			<option value="r">Red</option>
			<option value="g">Green</option>
			<option value="b">Blue</option>
		</select>

		<div class="form-group has-error">
			<input id="email" name="email" />
		</div>
		<div class="form-group">
			<input id="phone" name="phone" />
		</div>
	</form>

	<div class="panel" id="left">
		<a href="/other">one</a>
		<a href="/other">two</a>
	</div>
	<div class="panel" id="right">
		<a href="/other">three</a>
	</div>
	<div class="panel" id="hidden" style="display: none">
		<a href="/other">four</a>
	</div>

	<ul id="menu">
		<li><a href="#">Edit</a></li>
		<li><a href="#">Delete</a></li>
	</ul>

	<button id="popup" onclick="window.open('/other', 'other')">Open</button>

	<div id="spacer"></div>
	<p id="bottom">The end.</p>
</body>
</html>
`

var otherPage = `
<html>
<head>
	<title>Support Test Suite - Other Page</title>
</head>
<body>
	The other page.
</body>
</html>
`

var redirectPage = `
<html>
<head>
	<title>Support Test Suite - Redirect Page</title>
</head>
<body>
	This page moves to the other page after a moment.
	<script>
		setTimeout(function() { window.location = '/other'; }, 300);
	</script>
</body>
</html>
`

var delayedPage = `
<html>
<head>
	<title>Support Test Suite - Delayed Page</title>
</head>
<body>
	<div id="gone">Going away.</div>
	<script>
		setTimeout(function() {
			var late = document.createElement('div');
			late.id = 'late';
			late.textContent = 'Here now.';
			document.body.appendChild(late);
			document.getElementById('gone').style.display = 'none';
		}, 500);
	</script>
</body>
</html>
`

var alertPage = `
<html>
<head>
	<title>Support Test Suite - Alert Page</title>
</head>
<body>
	<p id="answer">none</p>
	<script>
		document.getElementById('answer').textContent = confirm('Continue?') ? 'accepted' : 'dismissed';
	</script>
</body>
</html>
`

// widgetsPage loads the assets fetched by cmd/fetchtestdeps from /assets/.
var widgetsPage = `
<html>
<head>
	<title>Support Test Suite - Widgets Page</title>
	<link rel="stylesheet" href="/assets/jquery-ui/jquery-ui.min.css" />
	<link rel="stylesheet" href="/assets/select2/select2.css" />
	<script src="/assets/jquery.min.js"></script>
	<script src="/assets/jquery-ui/jquery-ui.min.js"></script>
	<script src="/assets/select2/select2.js"></script>
	<style>
		#volume { width: 200px; margin: 20px; }
	</style>
</head>
<body>
	<input id="city" />

	<input id="start" value="03/07/2014" />
	<input id="end" value="03/07/2014" />

	<div id="volume"></div>
	<p id="volume-value">0</p>

	<input type="hidden" id="tags" style="width: 300px" />
	<select id="country" style="width: 300px">
		<option value="fr">France</option>
		<option value="es">Spain</option>
		<option value="gb">United Kingdom</option>
	</select>

	<script>
		$('#city').autocomplete({source: ['London', 'Leeds', 'Liverpool', 'Madrid'], delay: 0});
		$('#start').datepicker({maxDate: new Date(2014, 2, 31)});
		$('#end').datepicker();
		$('#volume').slider({
			change: function(event, ui) { $('#volume-value').text(ui.value); }
		});
		$('#tags').select2({tags: ['red', 'green', 'blue']});
		$('#country').select2();
	</script>
</body>
</html>
`

// NewHandler serves the fixture pages, and the widget assets from assetsDir
// under /assets/.
func NewHandler(assetsDir string) http.Handler {
	mux := http.NewServeMux()
	for path, page := range map[string]string{
		"/other":    otherPage,
		"/redirect": redirectPage,
		"/delayed":  delayedPage,
		"/alert":    alertPage,
		"/widgets":  widgetsPage,
	} {
		page := page
		mux.HandleFunc(path, func(w http.ResponseWriter, _ *http.Request) {
			fmt.Fprint(w, page)
		})
	}
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		fmt.Fprint(w, homePage)
	})
	if assetsDir != "" {
		mux.Handle("/assets/", http.StripPrefix("/assets/", http.FileServer(http.Dir(assetsDir))))
	}
	return mux
}
