package help

const ColdstartYAML = `# acs-monitor Quick Start

commands:
  monitor: |
    # Discover ACS documents, detect changes, update the registry
    acs-monitor monitor --config config.yaml

  process: |
    # Extract text/sections/standards from downloaded PDFs
    acs-monitor process --config config.yaml

  process_with_backend: |
    # Force a specific extraction backend
    acs-monitor process --backend pdftext-plain

  process_filtered: |
    # Only keep TASK and AREA OF OPERATION sections in artifacts
    acs-monitor process --sections "TASK,AREA OF OPERATION"

  notify: |
    # Render the change-notification markdown from changes.json
    acs-monitor notify --output notification.md

  history: |
    # Inspect a document's check history
    acs-monitor history --url "https://www.faa.gov/.../private_airplane_acs.pdf"

  runs: |
    acs-monitor runs --limit 10

artifacts:
  registry: data/metadata/known_documents.json
  change_log: data/metadata/changes.json
  run_summary: data/metadata/last_run_summary.json
  processing_summary: data/metadata/processing_summary.json
  documents: data/acs-documents/
  extracted_text: data/extracted-text/

backends:
  poppler: "External pdftotext -layout (best fidelity, needs poppler installed)"
  pdftext-rows: "Pure Go, row-ordered text"
  pdftext-plain: "Pure Go, page-by-page plain text fallback"
`
