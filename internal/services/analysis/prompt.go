package analysis

import "fmt"

// systemPrompt establishes the auditor persona for every request.
const systemPrompt = "You are a strict compliance auditor."

// buildPrompt constructs the audit instruction for the given policy text
// and standard. The five-section shape is a prompt convention only — the
// returned text is treated as opaque downstream, never parsed.
func buildPrompt(text, standard string) string {
	return fmt.Sprintf(`You are an expert Compliance Auditor for Federal Regulations.

TASK: Audit the following policy text against the standard: %[1]s.

OUTPUT FORMAT:
SECTION 1: EXECUTIVE SUMMARY
(Briefly explain if this policy meets the general intent of %[1]s.)

SECTION 2: COMPLIANCE CHECKLIST
(List 3-5 key requirements of %[1]s. Mark them as [PASS] or [FAIL] based on the text.)

SECTION 3: CRITICAL GAPS
(List missing specific clauses required by the law.)

SECTION 4: REMEDIATION PLAN
(Bullet points on how to fix the gaps.)

SECTION 5: OFFICIAL SCORE
(Give a score out of 100 based on completeness.)

POLICY TEXT:
%s`, standard, text)
}
