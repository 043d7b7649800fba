// Package templates contains the template producers for the generated
// native sources and resources. Producers are pure functions of the
// effective configuration; the generation engine treats their output as
// opaque text.
package templates

import (
	"fmt"
	"strings"

	"github.com/hullworks/keel/internal/core/domain"
	"github.com/hullworks/keel/internal/core/ports"
)

// Set groups the template producers the orchestrator invokes. It carries no
// state; the type exists so the producer bundle can be injected as one unit.
type Set struct{}

var _ ports.Templates = (*Set)(nil)

// NewSet creates a new template producer Set.
func NewSet() *Set {
	return &Set{}
}

// AppDelegate produces the application delegate source.
func (s *Set) AppDelegate(cfg *domain.EffectiveConfig) string {
	var b strings.Builder
	b.WriteString("import Foundation\n")
	b.WriteString("#if os(iOS)\nimport UIKit\n#else\nimport AppKit\n#endif\n\n")
	fmt.Fprintf(&b, "// %s: generated by keel; do not edit.\n", cfg.App.Name)
	b.WriteString("#if os(iOS)\n")
	b.WriteString("@main\nclass AppDelegate: UIResponder, UIApplicationDelegate {\n")
	b.WriteString("    var window: UIWindow?\n\n")
	b.WriteString("    func application(_ application: UIApplication, didFinishLaunchingWithOptions launchOptions: [UIApplication.LaunchOptionsKey: Any]?) -> Bool {\n")
	b.WriteString("        let window = UIWindow(frame: UIScreen.main.bounds)\n")
	b.WriteString("        window.rootViewController = WebViewController()\n")
	b.WriteString("        window.makeKeyAndVisible()\n")
	b.WriteString("        self.window = window\n")
	b.WriteString("        return true\n")
	b.WriteString("    }\n")
	b.WriteString("}\n")
	b.WriteString("#else\n")
	b.WriteString("@main\nclass AppDelegate: NSObject, NSApplicationDelegate {\n")
	b.WriteString("    var windowController: MainWindowController?\n\n")
	b.WriteString("    func applicationDidFinishLaunching(_ notification: Notification) {\n")
	fmt.Fprintf(&b, "        let controller = MainWindowController(title: %q", chromeTitle(cfg))
	fmt.Fprintf(&b, ", width: %d, height: %d)\n", chromeWidth(cfg), chromeHeight(cfg))
	b.WriteString("        controller.showWindow(nil)\n")
	b.WriteString("        self.windowController = controller\n")
	b.WriteString("    }\n")
	b.WriteString("}\n")
	b.WriteString("#endif\n")
	return b.String()
}

// WebViewController produces the host web view controller source.
func (s *Set) WebViewController(cfg *domain.EffectiveConfig) string {
	var b strings.Builder
	b.WriteString("import WebKit\n")
	b.WriteString("#if os(iOS)\nimport UIKit\n#else\nimport AppKit\n#endif\n\n")
	b.WriteString("// Generated by keel; do not edit.\n")
	b.WriteString("let webAssetDirectory = \"dist\"\n")
	if cfg.Dev != nil && cfg.Dev.ServerURL != "" {
		fmt.Fprintf(&b, "let devServerURL: String? = %q\n", cfg.Dev.ServerURL)
	} else {
		b.WriteString("let devServerURL: String? = nil\n")
	}
	b.WriteString("\n#if os(iOS)\n")
	b.WriteString("class WebViewController: UIViewController, WKNavigationDelegate {\n")
	b.WriteString("    var webView: WKWebView!\n\n")
	b.WriteString("    override func loadView() {\n")
	b.WriteString("        let configuration = WKWebViewConfiguration()\n")
	b.WriteString("        KeelBridge.install(into: configuration.userContentController)\n")
	b.WriteString("        PluginRegistrant.registerAll()\n")
	b.WriteString("        webView = WKWebView(frame: .zero, configuration: configuration)\n")
	b.WriteString("        webView.navigationDelegate = self\n")
	b.WriteString("        view = webView\n")
	b.WriteString("    }\n\n")
	b.WriteString("    override func viewDidLoad() {\n")
	b.WriteString("        super.viewDidLoad()\n")
	b.WriteString("        KeelBridge.load(in: webView, assets: webAssetDirectory, devServer: devServerURL)\n")
	b.WriteString("    }\n")
	b.WriteString("}\n")
	b.WriteString("#else\n")
	b.WriteString("class MainWindowController: NSWindowController {\n")
	b.WriteString("    convenience init(title: String, width: Int, height: Int) {\n")
	b.WriteString("        let window = NSWindow(contentRect: NSRect(x: 0, y: 0, width: width, height: height),\n")
	b.WriteString("                              styleMask: [.titled, .closable, .miniaturizable, .resizable],\n")
	b.WriteString("                              backing: .buffered, defer: false)\n")
	b.WriteString("        window.title = title\n")
	b.WriteString("        let configuration = WKWebViewConfiguration()\n")
	b.WriteString("        KeelBridge.install(into: configuration.userContentController)\n")
	b.WriteString("        PluginRegistrant.registerAll()\n")
	b.WriteString("        let webView = WKWebView(frame: window.contentLayoutRect, configuration: configuration)\n")
	b.WriteString("        webView.autoresizingMask = [.width, .height]\n")
	b.WriteString("        window.contentView = webView\n")
	b.WriteString("        self.init(window: window)\n")
	b.WriteString("        KeelBridge.load(in: webView, assets: webAssetDirectory, devServer: devServerURL)\n")
	b.WriteString("    }\n")
	b.WriteString("}\n")
	b.WriteString("#endif\n")
	return b.String()
}

// Bridge produces the native side of the web message bridge.
func (s *Set) Bridge(cfg *domain.EffectiveConfig) string {
	var b strings.Builder
	b.WriteString("import WebKit\n\n")
	b.WriteString("// Generated by keel; do not edit.\n")
	b.WriteString("enum KeelBridge {\n")
	b.WriteString("    static func install(into controller: WKUserContentController) {\n")
	b.WriteString("        controller.add(BridgeMessageHandler(), name: \"keel\")\n")
	b.WriteString("    }\n\n")
	b.WriteString("    static func load(in webView: WKWebView, assets: String, devServer: String?) {\n")
	b.WriteString("        if let dev = devServer, let url = URL(string: dev) {\n")
	b.WriteString("            webView.load(URLRequest(url: url))\n")
	b.WriteString("            return\n")
	b.WriteString("        }\n")
	b.WriteString("        guard let index = Bundle.main.url(forResource: \"index\", withExtension: \"html\", subdirectory: assets) else {\n")
	b.WriteString("            return\n")
	b.WriteString("        }\n")
	b.WriteString("        webView.loadFileURL(index, allowingReadAccessTo: index.deletingLastPathComponent())\n")
	b.WriteString("    }\n")
	b.WriteString("}\n\n")
	b.WriteString("final class BridgeMessageHandler: NSObject, WKScriptMessageHandler {\n")
	b.WriteString("    func userContentController(_ controller: WKUserContentController, didReceive message: WKScriptMessage) {\n")
	b.WriteString("        PluginRegistrant.dispatch(message)\n")
	b.WriteString("    }\n")
	b.WriteString("}\n")
	return b.String()
}

// Updater produces the over-the-air update client source. Invoked only when
// the updates section is configured.
func (s *Set) Updater(cfg *domain.EffectiveConfig) string {
	var b strings.Builder
	b.WriteString("import Foundation\n\n")
	b.WriteString("// Generated by keel; do not edit.\n")
	b.WriteString("enum KeelUpdater {\n")
	if cfg.Updates != nil {
		fmt.Fprintf(&b, "    static let endpoint = %q\n", cfg.Updates.Endpoint)
		fmt.Fprintf(&b, "    static let channel = %q\n", cfg.Updates.Channel)
		fmt.Fprintf(&b, "    static let publicKey = %q\n", cfg.Updates.PublicKey)
	} else {
		b.WriteString("    static let endpoint = \"\"\n")
		b.WriteString("    static let channel = \"\"\n")
		b.WriteString("    static let publicKey = \"\"\n")
	}
	fmt.Fprintf(&b, "    static let currentVersion = %q\n\n", cfg.App.Version)
	b.WriteString("    static func checkForUpdates(completion: @escaping (URL?) -> Void) {\n")
	b.WriteString("        guard var components = URLComponents(string: endpoint) else {\n")
	b.WriteString("            completion(nil)\n")
	b.WriteString("            return\n")
	b.WriteString("        }\n")
	b.WriteString("        components.queryItems = [\n")
	b.WriteString("            URLQueryItem(name: \"channel\", value: channel),\n")
	b.WriteString("            URLQueryItem(name: \"version\", value: currentVersion),\n")
	b.WriteString("        ]\n")
	b.WriteString("        completion(components.url)\n")
	b.WriteString("    }\n")
	b.WriteString("}\n")
	return b.String()
}

func chromeTitle(cfg *domain.EffectiveConfig) string {
	if cfg.Chrome != nil && cfg.Chrome.Title != "" {
		return cfg.Chrome.Title
	}
	return cfg.App.Name
}

func chromeWidth(cfg *domain.EffectiveConfig) int {
	if cfg.Chrome != nil && cfg.Chrome.Width > 0 {
		return cfg.Chrome.Width
	}
	return 1024
}

func chromeHeight(cfg *domain.EffectiveConfig) int {
	if cfg.Chrome != nil && cfg.Chrome.Height > 0 {
		return cfg.Chrome.Height
	}
	return 768
}
