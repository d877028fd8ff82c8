package server

import "html/template"

// The block pages are built in, with the 404 page taking its text and
// colors from configuration.

var notFoundTpl = template.Must(template.New("404").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Title}}</title>
    <style>
        :root {
            --bg-color: {{.BackgroundColor}};
            --text-color: {{.TextColor}};
            --accent-color: {{.AccentColor}};
        }
        * { margin: 0; padding: 0; box-sizing: border-box; }
        body {
            font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, Oxygen, Ubuntu, Cantarell, "Open Sans", "Helvetica Neue", sans-serif;
            background-color: var(--bg-color);
            color: var(--text-color);
            display: flex;
            justify-content: center;
            align-items: center;
            min-height: 100vh;
            padding: 2rem;
            line-height: 1.6;
        }
        .container {
            max-width: 800px;
            text-align: center;
            padding: 2rem;
            animation: fadeIn 0.5s ease-out;
        }
        .error-code {
            font-size: 8rem;
            font-weight: 700;
            margin-bottom: 1rem;
            color: var(--accent-color);
            position: relative;
            display: inline-block;
        }
        h1 { font-size: 2.5rem; margin-bottom: 1.5rem; color: var(--text-color); }
        p {
            font-size: 1.2rem;
            margin-bottom: 2.5rem;
            max-width: 600px;
            margin-left: auto;
            margin-right: auto;
        }
        .back-home {
            display: inline-block;
            padding: 0.8rem 1.8rem;
            background-color: var(--accent-color);
            color: white;
            text-decoration: none;
            border-radius: 4px;
            font-weight: 500;
            transition: all 0.3s ease;
            box-shadow: 0 4px 6px rgba(0, 0, 0, 0.1);
        }
        .astronaut {
            width: 140px;
            height: 140px;
            margin: 0 auto 1.5rem;
            background-color: var(--accent-color);
            border-radius: 50%;
            position: relative;
            animation: float 6s ease-in-out infinite;
        }
        @keyframes float {
            0% { transform: translateY(0px); }
            50% { transform: translateY(-20px); }
            100% { transform: translateY(0px); }
        }
        @keyframes fadeIn {
            from { opacity: 0; transform: translateY(-10px); }
            to { opacity: 1; transform: translateY(0); }
        }
        @media (max-width: 768px) {
            .error-code { font-size: 6rem; }
            h1 { font-size: 2rem; }
            p { font-size: 1rem; }
        }
    </style>
</head>
<body>
    <div class="container">
        <div class="astronaut"></div>
        <div class="error-code">404</div>
        <h1>{{.Heading}}</h1>
        <p>{{.Message}}</p>
        <a href="{{.ButtonURL}}" class="back-home">{{.ButtonText}}</a>
    </div>
</body>
</html>`))

const forbiddenPage = `<h1>403 Forbidden</h1><p>You don't have permission to access this resource.</p>`

// The captcha challenge is display only; no verification endpoint
// exists.
var captchaTpl = template.Must(template.New("captcha").Parse(`<h1>Verify You're Human</h1>
<p>Please complete this challenge to continue:</p>
<form method='post'>
<p>What is {{.A}} + {{.B}}? <input type='text' name='captcha_answer'></p>
<input type='submit' value='Submit'>
</form>`))
