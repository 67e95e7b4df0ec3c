package patches

import (
	"strings"

	"github.com/mouse-blink/bundlepatch/internal/domain"
	m "github.com/mouse-blink/bundlepatch/internal/model"
)

// The approval onRequest handler is edited by three patches. Every shape of
// it is rendered from these fragments:
//
//	head [const decls;] [read-only guard] [queue filter] body [auto-advance tail] tail
const (
	handlerHead = `this.updateConversationState(o,a=>{`
	handlerBody = `a.requests.push(e),a.hasUnreadTurn=!0`
	handlerTail = `}),this.approvalRequestListeners.forEach`

	queueDecl   = `l=typeof i.itemId=="string"?i.itemId:null`
	queueFilter = `a.requests=a.requests.filter(c=>c.id!==n&&!(c.method===r&&l!=null&&c.params?.itemId===l)),`

	readOnlyGuard = `if(r==="item/commandExecution/requestApproval"&&Array.isArray(i.commandActions)&&i.commandActions.length>0&&` +
		`i.commandActions.every(x=>x.type==="read"||x.type==="listFiles"||x.type==="search"))` +
		`{Yt.dispatchMessage("mcp-response",{response:{id:n,result:{decision:"accept"}}});return}`
)

var approvalHandler = domain.Composition{
	Name:    "approval-request-handler",
	Members: []string{QueueName, AutoAdvanceName, ReadOnlyName},
	Render:  renderApprovalHandler,
}

// ApprovalHandler returns the composition shared by the queue, auto-advance
// and read-only patches.
func ApprovalHandler() domain.Composition {
	return approvalHandler
}

func renderApprovalHandler(applied domain.AppliedSet) string {
	var decls []string

	if applied.Has(QueueName) {
		decls = append(decls, queueDecl)
	}

	// The queue patch declares l, so the auto-advance callbacks use u then.
	param := "l"
	if applied.Has(QueueName) {
		param = "u"
	}

	if applied.Has(AutoAdvanceName) {
		decls = append(decls, autoAdvanceDecl(param))
	}

	var b strings.Builder

	b.WriteString(handlerHead)

	if len(decls) > 0 {
		b.WriteString("const " + strings.Join(decls, ",") + ";")
	}

	if applied.Has(ReadOnlyName) {
		b.WriteString(readOnlyGuard)
	}

	if applied.Has(QueueName) {
		b.WriteString(queueFilter)
	}

	b.WriteString(handlerBody)

	if applied.Has(AutoAdvanceName) {
		b.WriteString(autoAdvanceTail(param))
	}

	b.WriteString(handlerTail)

	return b.String()
}

func autoAdvanceDecl(param string) string {
	return `P0=a.requests.find(` + param + `=>` +
		param + `.method==="item/commandExecution/requestApproval"||` +
		param + `.method==="item/fileChange/requestApproval")??null`
}

func autoAdvanceTail(param string) string {
	return `,P0&&(Yt.dispatchMessage("mcp-response",{response:{id:P0.id,result:{decision:"acceptForSession"}}}),` +
		`a.requests=a.requests.filter(` + param + `=>` + param + `.id!==P0.id))`
}

// Queue makes the approval request queue idempotent: before a request is
// pushed, requests with the same id or the same method and itemId are
// dropped.
func Queue() m.Patch {
	return m.Patch{
		Name:    QueueName,
		Title:   "approval queue",
		Concern: "approval request queue",
		Sites:   []m.Site{approvalHandler.MustSite(QueueName)},
	}
}

// AutoAdvance answers a still pending command or file change approval with
// acceptForSession when a newer request arrives, so one approval is visible
// at a time.
func AutoAdvance() m.Patch {
	return m.Patch{
		Name:    AutoAdvanceName,
		Title:   "approval auto-advance",
		Concern: "approval auto-advance",
		Sites:   []m.Site{approvalHandler.MustSite(AutoAdvanceName)},
	}
}

// ReadOnly accepts command approvals whose parsed actions only read, list
// or search, without queueing them.
func ReadOnly() m.Patch {
	return m.Patch{
		Name:    ReadOnlyName,
		Title:   "read-only auto-approval",
		Concern: "read-only approval auto-accept",
		Sites:   []m.Site{approvalHandler.MustSite(ReadOnlyName)},
	}
}
