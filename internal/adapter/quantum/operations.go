package quantum

import (
	"net/http"
	"net/url"
	"strings"
)

// operation describes how one client method maps onto a single HTTP request.
type operation struct {
	name string
	// method is the HTTP verb
	method string
	// path is relative to the endpoint; {placeholders} are filled from the call arguments
	path string
	// wrap is the envelope field the request payload is wrapped in, empty for no body
	wrap string
	// unwrap is the envelope field the response is selected from, empty when the body is ignored
	unwrap string
	policy notFoundPolicy
}

var (
	opListReferences = operation{
		name:   "listReferences",
		method: http.MethodGet,
		path:   "/networks/{net}/ports",
		unwrap: "ports",
		policy: emptyOnNotFound,
	}
	opList = operation{
		name:   "list",
		method: http.MethodGet,
		path:   "/networks/{net}/ports/detail",
		unwrap: "ports",
		policy: emptyOnNotFound,
	}
	opShow = operation{
		name:   "show",
		method: http.MethodGet,
		path:   "/networks/{net}/ports/{id}",
		unwrap: "port",
		policy: absentOnNotFound,
	}
	opShowDetails = operation{
		name:   "showDetails",
		method: http.MethodGet,
		path:   "/networks/{net}/ports/{id}/detail",
		unwrap: "port",
		policy: absentOnNotFound,
	}
	opCreate = operation{
		name:   "create",
		method: http.MethodPost,
		path:   "/networks/{net}/ports",
		unwrap: "port",
		policy: propagateAll,
	}
	opCreateWithState = operation{
		name:   "createWithState",
		method: http.MethodPost,
		path:   "/networks/{net}/ports",
		wrap:   "port",
		unwrap: "port",
		policy: propagateAll,
	}
	opUpdate = operation{
		name:   "update",
		method: http.MethodPut,
		path:   "/networks/{net}/ports/{id}",
		wrap:   "port",
		policy: falseOnNotFound,
	}
	opDelete = operation{
		name:   "delete",
		method: http.MethodDelete,
		path:   "/networks/{net}/ports/{id}",
		policy: falseOnNotFound,
	}
	opShowAttachment = operation{
		name:   "showAttachment",
		method: http.MethodGet,
		path:   "/networks/{net}/ports/{portId}/attachment",
		unwrap: "attachment",
		policy: absentOnNotFound,
	}
	opPlugAttachment = operation{
		name:   "plugAttachment",
		method: http.MethodPut,
		path:   "/networks/{net}/ports/{portId}/attachment",
		wrap:   "attachment",
		policy: falseOnNotFound,
	}
	opUnplugAttachment = operation{
		name:   "unplugAttachment",
		method: http.MethodDelete,
		path:   "/networks/{net}/ports/{portId}/attachment",
		policy: falseOnNotFound,
	}
)

// operations lists every supported operation.
var operations = []operation{
	opListReferences, opList, opShow, opShowDetails,
	opCreate, opCreateWithState, opUpdate, opDelete,
	opShowAttachment, opPlugAttachment, opUnplugAttachment,
}

// expand fills the path template. params alternates placeholder names and values.
func (op operation) expand(params ...string) string {
	pairs := make([]string, 0, len(params))
	for i := 0; i+1 < len(params); i += 2 {
		pairs = append(pairs, "{"+params[i]+"}", escapeSegment(params[i+1]))
	}
	return strings.NewReplacer(pairs...).Replace(op.path)
}

// escapeSegment percent-encodes an identifier for use in a path, except for '/' and '='
// which Quantum expects verbatim in tenant qualified identifiers.
func escapeSegment(s string) string {
	escaped := url.PathEscape(s)
	escaped = strings.ReplaceAll(escaped, "%2F", "/")
	return strings.ReplaceAll(escaped, "%3D", "=")
}
