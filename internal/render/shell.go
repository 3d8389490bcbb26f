package render

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"pages-generator/internal/config"
	"pages-generator/internal/plan"
)

// timestampLayout is the footer timestamp format.
const timestampLayout = "2006-01-02 15:04:05"

// Shell wraps rendered body fragments into complete HTML documents.
type Shell struct {
	tmpl            *template.Template
	footer          string
	clientHighlight bool
	now             func() time.Time
}

// pageData is the value a shell template is executed with. Custom
// templates receive the same fields.
type pageData struct {
	Title           string
	HomePath        string
	Breadcrumb      template.HTML
	Content         template.HTML
	Timestamp       string
	Footer          string
	ClientHighlight bool
}

// NewShell builds the page shell for a site. A template path in the
// configuration replaces the built-in one.
func NewShell(site *config.Site) (*Shell, error) {
	tmpl := defaultShell

	if site.Template != "" {
		custom, err := template.ParseFiles(site.Template)
		if err != nil {
			return nil, fmt.Errorf("loading page template: %w", err)
		}

		tmpl = custom
	}

	return &Shell{
		tmpl:            tmpl,
		footer:          site.Footer,
		clientHighlight: site.Markdown.Highlight == config.HighlightClient,
		now:             time.Now,
	}, nil
}

// SetClock replaces the timestamp source, so one build stamps every page
// with the same time base. A nil clock keeps the current one.
func (s *Shell) SetClock(now func() time.Time) {
	if now != nil {
		s.now = now
	}
}

// Page assembles the full HTML document for one task around its body.
func (s *Shell) Page(task plan.Task, body []byte) ([]byte, error) {
	data := pageData{
		Title:           task.Title,
		HomePath:        task.RelRoot + "/index.html",
		Breadcrumb:      breadcrumbHTML(task),
		Content:         template.HTML(body),
		Timestamp:       s.now().Format(timestampLayout),
		Footer:          s.footer,
		ClientHighlight: s.clientHighlight,
	}

	var buf bytes.Buffer

	err := s.tmpl.Execute(&buf, data)
	if err != nil {
		return nil, fmt.Errorf("executing page template: %w", err)
	}

	return buf.Bytes(), nil
}

var defaultShell = template.Must(template.New("page").Parse(pageShell))

const pageShell = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Title}}</title>
{{- if .ClientHighlight}}
    <link rel="stylesheet" href="https://cdnjs.cloudflare.com/ajax/libs/highlight.js/11.9.0/styles/github-dark.min.css">
    <script src="https://cdnjs.cloudflare.com/ajax/libs/highlight.js/11.9.0/highlight.min.js"></script>
{{- end}}
    <style>
        :root {
            --primary: #6366f1;
            --primary-dark: #4f46e5;
            --secondary: #8b5cf6;
            --bg-main: #0f172a;
            --bg-card: #1e293b;
            --bg-code: #0f172a;
            --text-primary: #f1f5f9;
            --text-secondary: #94a3b8;
            --border: #334155;
            --accent: #06b6d4;
            --success: #10b981;
        }

        * { margin: 0; padding: 0; box-sizing: border-box; }

        body {
            font-family: 'Inter', -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif;
            line-height: 1.7;
            color: var(--text-primary);
            background: var(--bg-main);
        }

        .container {
            max-width: 1200px;
            margin: 0 auto;
            padding: 20px;
        }

        .home-btn {
            position: fixed;
            top: 20px;
            right: 20px;
            background: var(--accent);
            color: white;
            width: 50px;
            height: 50px;
            border-radius: 50%;
            text-decoration: none;
            z-index: 1000;
            box-shadow: 0 4px 20px rgba(6, 182, 212, 0.4);
            transition: all 0.3s cubic-bezier(0.4, 0, 0.2, 1);
            font-size: 24px;
            display: flex;
            align-items: center;
            justify-content: center;
        }

        .home-btn:hover {
            background: #0891b2;
            transform: translateY(-2px);
            box-shadow: 0 8px 30px rgba(6, 182, 212, 0.5);
        }

        .breadcrumb {
            background: var(--bg-card);
            padding: 12px 0;
            margin-bottom: 24px;
            font-size: 14px;
            border-radius: 8px;
            border: 1px solid var(--border);
        }

        .breadcrumb a {
            color: var(--accent);
            text-decoration: none;
            transition: color 0.2s;
        }

        .breadcrumb a:hover {
            color: var(--primary);
            text-decoration: underline;
        }

        .content {
            background: var(--bg-card);
            padding: 3rem;
            border-radius: 16px;
            box-shadow: 0 4px 20px rgba(0, 0, 0, 0.3);
            border: 1px solid var(--border);
        }

        .file-list {
            display: grid;
            grid-template-columns: repeat(auto-fill, minmax(300px, 1fr));
            gap: 1.5rem;
            margin: 2rem 0;
        }

        .file-item {
            padding: 1.5rem;
            border: 1px solid var(--border);
            border-radius: 12px;
            background: var(--bg-main);
            transition: all 0.3s cubic-bezier(0.4, 0, 0.2, 1);
            position: relative;
            overflow: hidden;
        }

        .file-item::before {
            content: '';
            position: absolute;
            top: 0;
            left: 0;
            width: 100%;
            height: 3px;
            background: linear-gradient(90deg, var(--primary), var(--secondary));
            opacity: 0;
            transition: opacity 0.3s;
        }

        .file-item:hover {
            transform: translateY(-4px);
            box-shadow: 0 8px 30px rgba(99, 102, 241, 0.3);
            border-color: var(--primary);
        }

        .file-item:hover::before {
            opacity: 1;
        }

        .file-item a {
            color: var(--text-primary);
            text-decoration: none;
            font-weight: 600;
            display: block;
            font-size: 1.1rem;
        }

        .file-item a:hover {
            color: var(--primary);
        }

        .file-type {
            font-size: 13px;
            color: var(--text-secondary);
            margin-top: 8px;
            font-weight: 500;
        }

        /* Code Blocks */
        pre {
            background: var(--bg-code);
            padding: 1.5rem;
            border-radius: 12px;
            overflow-x: auto;
            border: 1px solid var(--border);
            margin: 1.5rem 0;
            box-shadow: 0 4px 10px rgba(0, 0, 0, 0.3);
            position: relative;
        }

        pre code {
            background: none;
            padding: 0;
            font-family: 'Fira Code', 'Consolas', monospace;
            font-size: 0.9em;
            line-height: 1.6;
        }

        /* Copy Button */
        .copy-btn {
            position: absolute;
            top: 8px;
            right: 8px;
            background: var(--primary);
            color: white;
            border: none;
            padding: 6px 12px;
            border-radius: 6px;
            cursor: pointer;
            font-size: 12px;
            font-weight: 600;
            transition: all 0.2s;
            opacity: 0.7;
            z-index: 10;
        }

        .copy-btn:hover {
            opacity: 1;
            background: var(--primary-dark);
            transform: translateY(-1px);
        }

        .copy-btn.copied {
            background: var(--success);
        }

        pre:hover .copy-btn {
            opacity: 1;
        }

        /* Inline Code */
        code {
            background: var(--bg-code);
            color: #8b5cf6;
            padding: 3px 8px;
            border-radius: 6px;
            font-size: 1.1em;
            font-family: 'Fira Code', 'Consolas', monospace;
            border: 1px solid var(--border);
        }

        /* Headings */
        h1, h2, h3, h4, h5, h6 {
            color: var(--text-primary);
            margin: 2rem 0 1rem 0;
            font-weight: 700;
            letter-spacing: -0.5px;
        }

        h1 {
            font-size: 2.5rem;
            background: linear-gradient(135deg, var(--primary), var(--secondary));
            -webkit-background-clip: text;
            border-bottom: 3px solid var(--primary);
            padding-bottom: 12px;
            margin-bottom: 1.5rem;
        }

        h2 {
            font-size: 2rem;
            color: var(--primary);
            border-bottom: 2px solid var(--border);
            padding-bottom: 8px;
        }

        h3 {
            font-size: 1.5rem;
            color: var(--accent);
        }

        /* Links */
        a {
            color: var(--accent);
            transition: color 0.2s;
        }

        a:hover {
            color: var(--primary);
        }

        /* Paragraphs */
        p {
            margin: 1rem 0;
            color: var(--text-secondary);
        }

        /* Lists */
        ul, ol {
            margin: 1rem 0;
            padding-left: 2rem;
            color: var(--text-secondary);
        }

        li {
            margin: 0.5rem 0;
        }

        /* Tables */
        table {
            border-collapse: collapse;
            width: 100%;
            margin: 1.5rem 0;
            background: var(--bg-main);
            border-radius: 8px;
            overflow: hidden;
            box-shadow: 0 2px 10px rgba(0, 0, 0, 0.2);
        }

        th, td {
            border: 1px solid var(--border);
            padding: 12px 16px;
            text-align: left;
        }

        th {
            background: linear-gradient(135deg, var(--primary), var(--secondary));
            color: white;
            font-weight: 600;
        }

        tr:hover {
            background: var(--bg-card);
        }

        /* Blockquotes */
        blockquote {
            border-left: 4px solid var(--primary);
            padding: 1rem 1.5rem;
            margin: 1.5rem 0;
            background: var(--bg-main);
            border-radius: 0 8px 8px 0;
            color: var(--text-secondary);
            font-style: italic;
        }

        /* Horizontal Rule */
        hr {
            border: none;
            border-top: 2px solid var(--border);
            margin: 2rem 0;
        }

        .footer {
            text-align: center;
            padding: 2rem;
            color: var(--text-secondary);
            border-top: 1px solid var(--border);
            margin-top: 3rem;
            font-size: 14px;
        }

        /* Scrollbar */
        ::-webkit-scrollbar {
            width: 12px;
            height: 12px;
        }

        ::-webkit-scrollbar-track {
            background: var(--bg-main);
        }

        ::-webkit-scrollbar-thumb {
            background: var(--border);
            border-radius: 6px;
        }

        ::-webkit-scrollbar-thumb:hover {
            background: var(--primary);
        }

        @media (max-width: 768px) {
            .container { padding: 10px; }
            .file-list { grid-template-columns: 1fr; }
            .content { padding: 1.5rem; }
            h1 { font-size: 2rem; }
            h2 { font-size: 1.5rem; }
        }
    </style>
</head>
<body>
    <a href="{{.HomePath}}" class="home-btn">🏠</a>
    <div class="container">
        <div class="breadcrumb">
            <div style="padding: 0 20px;">
                {{.Breadcrumb}}
            </div>
        </div>
        <div class="content">
            {{.Content}}
        </div>
        <div class="footer">
            Generated on {{.Timestamp}} | {{.Footer}}
        </div>
    </div>
    <script>
        document.addEventListener('DOMContentLoaded', (event) => {
{{- if .ClientHighlight}}
            // Highlight code blocks
            document.querySelectorAll('pre code').forEach((block) => {
                hljs.highlightElement(block);
            });
{{- end}}
            // Add copy buttons to code blocks
            document.querySelectorAll('pre').forEach((pre) => {
                const button = document.createElement('button');
                button.className = 'copy-btn';
                button.textContent = 'Copy';

                button.addEventListener('click', () => {
                    const code = pre.querySelector('code').textContent;
                    navigator.clipboard.writeText(code).then(() => {
                        button.textContent = 'Copied!';
                        button.classList.add('copied');
                        setTimeout(() => {
                            button.textContent = 'Copy';
                            button.classList.remove('copied');
                        }, 2000);
                    }).catch(err => {
                        console.error('Failed to copy:', err);
                        button.textContent = 'Error';
                        setTimeout(() => {
                            button.textContent = 'Copy';
                        }, 2000);
                    });
                });

                pre.appendChild(button);
            });
        });
    </script>
</body>
</html>
`
