// Package lsp serves diagnostics and quick fixes over the language
// server protocol.
package lsp

import (
	"net/url"
	"path/filepath"
	"strings"
	"sync"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	_ "github.com/tliron/commonlog/simple"

	"github.com/dhamidi/remod/config"
	"github.com/dhamidi/remod/fix"
	"github.com/dhamidi/remod/lint"
)

const lsName = "remod"

// codeActionKindSourceFixAll is defined by LSP 3.17; the protocol_3_16
// bindings used here predate it.
const codeActionKindSourceFixAll = protocol.CodeActionKind("source.fixAll")

type Server struct {
	handler protocol.Handler
	server  *server.Server
	version string

	cfg config.Config

	mu        sync.Mutex
	documents map[protocol.DocumentUri]*fix.Document
}

func NewServer(version string) *Server {
	s := &Server{
		version:   version,
		cfg:       config.Default(),
		documents: make(map[protocol.DocumentUri]*fix.Document),
	}

	s.handler = protocol.Handler{
		Initialize:             s.initialize,
		Initialized:            s.initialized,
		Shutdown:               s.shutdown,
		SetTrace:               s.setTrace,
		TextDocumentDidOpen:    s.textDocumentDidOpen,
		TextDocumentDidChange:  s.textDocumentDidChange,
		TextDocumentDidClose:   s.textDocumentDidClose,
		TextDocumentDidSave:    s.textDocumentDidSave,
		TextDocumentCodeAction: s.textDocumentCodeAction,
	}

	s.server = server.NewServer(&s.handler, lsName, false)

	return s
}

func (s *Server) RunStdio() error {
	return s.server.RunStdio()
}

func (s *Server) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	rootDir := "."
	if params.RootPath != nil && *params.RootPath != "" {
		rootDir = *params.RootPath
	} else if params.RootURI != nil && *params.RootURI != "" {
		if path, err := uriToPath(string(*params.RootURI)); err == nil {
			rootDir = path
		}
	}

	if cfg, err := config.FindUpward(rootDir); err == nil {
		s.cfg = cfg
	}

	capabilities := s.handler.CreateServerCapabilities()

	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    syncKindPtr(protocol.TextDocumentSyncKindFull),
		Save: &protocol.SaveOptions{
			IncludeText: boolPtr(true),
		},
	}

	capabilities.CodeActionProvider = &protocol.CodeActionOptions{
		CodeActionKinds: []protocol.CodeActionKind{
			protocol.CodeActionKindQuickFix,
			codeActionKindSourceFixAll,
		},
	}

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lsName,
			Version: &s.version,
		},
	}, nil
}

func (s *Server) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	return nil
}

func (s *Server) shutdown(ctx *glsp.Context) error {
	return nil
}

func (s *Server) setTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (s *Server) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	s.updateDocument(ctx, params.TextDocument.URI, []byte(params.TextDocument.Text))
	return nil
}

func (s *Server) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	if len(params.ContentChanges) == 0 {
		return nil
	}
	change := params.ContentChanges[len(params.ContentChanges)-1]
	if whole, ok := change.(protocol.TextDocumentContentChangeEventWhole); ok {
		s.updateDocument(ctx, params.TextDocument.URI, []byte(whole.Text))
	}
	return nil
}

func (s *Server) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.mu.Lock()
	delete(s.documents, params.TextDocument.URI)
	s.mu.Unlock()
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         params.TextDocument.URI,
		Diagnostics: []protocol.Diagnostic{},
	})
	return nil
}

func (s *Server) textDocumentDidSave(ctx *glsp.Context, params *protocol.DidSaveTextDocumentParams) error {
	if params.Text != nil {
		s.updateDocument(ctx, params.TextDocument.URI, []byte(*params.Text))
	}
	return nil
}

func (s *Server) updateDocument(ctx *glsp.Context, uri protocol.DocumentUri, source []byte) {
	path, err := uriToPath(string(uri))
	if err != nil {
		path = string(uri)
	}
	doc := fix.NewDocument(path, source)
	s.mu.Lock()
	s.documents[uri] = doc
	s.mu.Unlock()

	diags := lint.Analyze(doc.Root, s.cfg.LintOptions())
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: toProtocolDiagnostics(doc.Source, diags),
	})
}

func (s *Server) document(uri protocol.DocumentUri) *fix.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.documents[uri]
}

func (s *Server) textDocumentCodeAction(ctx *glsp.Context, params *protocol.CodeActionParams) (any, error) {
	doc := s.document(params.TextDocument.URI)
	if doc == nil {
		return nil, nil
	}

	diags := lint.Analyze(doc.Root, s.cfg.LintOptions())
	if len(diags) == 0 {
		return nil, nil
	}

	start := offsetFor(doc.Source, params.Range.Start)
	end := offsetFor(doc.Source, params.Range.End)

	var actions []protocol.CodeAction
	for _, d := range diags {
		if d.Span.End.Offset < start || d.Span.Start.Offset > end {
			continue
		}
		result := fix.Apply(doc, d)
		if !result.Changed() {
			continue
		}
		actions = append(actions, codeAction(
			"Remove redundant '"+spanText(doc.Source, d)+"'",
			protocol.CodeActionKindQuickFix,
			params.TextDocument.URI,
			doc.Source,
			result.Text,
			[]lint.Diagnostic{d},
		))
	}

	all := fix.ApplyAll(doc, diags)
	if all.Changed() {
		actions = append(actions, codeAction(
			"Remove all redundant modifiers",
			codeActionKindSourceFixAll,
			params.TextDocument.URI,
			doc.Source,
			all.Text,
			diags,
		))
	}

	if len(actions) == 0 {
		return nil, nil
	}
	return actions, nil
}

func codeAction(title string, kind protocol.CodeActionKind, uri protocol.DocumentUri, source []byte, newText string, diags []lint.Diagnostic) protocol.CodeAction {
	return protocol.CodeAction{
		Title:       title,
		Kind:        &kind,
		Diagnostics: toProtocolDiagnostics(source, diags),
		Edit: &protocol.WorkspaceEdit{
			Changes: map[protocol.DocumentUri][]protocol.TextEdit{
				uri: {{
					Range:   fullRange(source),
					NewText: newText,
				}},
			},
		},
	}
}

func toProtocolDiagnostics(source []byte, diags []lint.Diagnostic) []protocol.Diagnostic {
	out := make([]protocol.Diagnostic, 0, len(diags))
	src := lsName
	for _, d := range diags {
		sev := toProtocolSeverity(d.Severity)
		out = append(out, protocol.Diagnostic{
			Range:    rangeFor(source, d.Span),
			Severity: &sev,
			Code:     &protocol.IntegerOrString{Value: d.Rule},
			Source:   &src,
			Message:  d.Message,
		})
	}
	return out
}

func toProtocolSeverity(sev lint.Severity) protocol.DiagnosticSeverity {
	switch sev {
	case lint.SevError:
		return protocol.DiagnosticSeverityError
	case lint.SevInfo:
		return protocol.DiagnosticSeverityInformation
	default:
		return protocol.DiagnosticSeverityWarning
	}
}

func spanText(source []byte, d lint.Diagnostic) string {
	start, end := d.Span.Start.Offset, d.Span.End.Offset
	if start < 0 || end > len(source) || start > end {
		return d.Rule
	}
	return string(source[start:end])
}

func uriToPath(uri string) (string, error) {
	if strings.HasPrefix(uri, "file://") {
		parsed, err := url.Parse(uri)
		if err != nil {
			return "", err
		}
		return filepath.Clean(parsed.Path), nil
	}
	return uri, nil
}

func boolPtr(b bool) *bool {
	return &b
}

func syncKindPtr(kind protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &kind
}
