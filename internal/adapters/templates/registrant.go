package templates

import (
	"fmt"
	"strings"

	"github.com/hullworks/keel/internal/core/domain"
)

// Registrant produces the plugin registrant source for one platform. It is
// the only producer that consumes the aggregated contribution: every
// registrar symbol is forward-declared and invoked once, in aggregation
// order.
func (s *Set) Registrant(cfg *domain.EffectiveConfig, agg domain.AggregatedContribution) string {
	var b strings.Builder
	b.WriteString("import WebKit\n\n")
	b.WriteString("// Generated by keel; do not edit.\n")

	for _, sym := range agg.Registrars {
		fmt.Fprintf(&b, "@_silgen_name(%q)\nfunc %s()\n\n", sym, sym)
	}

	b.WriteString("enum PluginRegistrant {\n")

	if len(agg.BridgeNamespaces) > 0 {
		b.WriteString("    static let namespaces: Set<String> = [\n")
		for _, ns := range agg.BridgeNamespaces {
			fmt.Fprintf(&b, "        %q,\n", ns)
		}
		b.WriteString("    ]\n\n")
	} else {
		b.WriteString("    static let namespaces: Set<String> = []\n\n")
	}

	b.WriteString("    static func registerAll() {\n")
	if len(agg.Registrars) == 0 {
		b.WriteString("        // No plugin registrars declared.\n")
	}
	for _, sym := range agg.Registrars {
		fmt.Fprintf(&b, "        %s()\n", sym)
	}
	b.WriteString("    }\n\n")
	b.WriteString("    static func dispatch(_ message: WKScriptMessage) {\n")
	b.WriteString("        guard let body = message.body as? [String: Any],\n")
	b.WriteString("              let namespace = body[\"namespace\"] as? String,\n")
	b.WriteString("              namespaces.contains(namespace) else {\n")
	b.WriteString("            return\n")
	b.WriteString("        }\n")
	b.WriteString("        NotificationCenter.default.post(name: Notification.Name(\"keel.\" + namespace), object: body)\n")
	b.WriteString("    }\n")
	b.WriteString("}\n")
	return b.String()
}
