package provider

// Config templates written verbatim by ensure. The start command is the same on
// every provider; only the surrounding file format changes. Deployed instances
// depend on these exact bytes, so edits here are breaking changes.

const renderYAML = `services:
  - type: web
    name: neno-ia
    env: python
    plan: free
    buildCommand: pip install -r requirements.txt
    startCommand: gunicorn backend.app:app --bind 0.0.0.0:$PORT --workers 2 --timeout 120
    envVars:
      - key: DATABASE_URL
        fromDatabase:
          name: neno-ia-db
          property: connectionString

databases:
  - name: neno-ia-db
    plan: free
`

const railwayTOML = `[build]
builder = "nixpacks"

[deploy]
startCommand = "gunicorn backend.app:app --bind 0.0.0.0:$PORT --workers 2 --timeout 120"

[env]
DATABASE_URL = "${{POSTGRES_URL}}"
`

const procfile = `web: gunicorn backend.app:app --bind 0.0.0.0:$PORT --workers 2 --timeout 120
`

const flyTOML = `app = "neno-ia"
primary_region = "gru"

[env]
  PORT = "8000"

[processes]
  app = "gunicorn backend.app:app --bind 0.0.0.0:$PORT --workers 2 --timeout 120"

[[services]]
  protocol = "tcp"
  internal_port = 8000
  processes = ["app"]

  [services.concurrency]
    type = "connections"
    hard_limit = 25
    soft_limit = 20

  [[services.ports]]
    port = 80
    handlers = ["http"]

  [[services.ports]]
    port = 443
    handlers = ["tls", "http"]

  [[services.tcp_checks]]
    interval = "15s"
    timeout = "2s"
    grace_period = "5s"
`
