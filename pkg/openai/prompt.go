package openai

import "fmt"

// ClassifierSystemPrompt instructs the model to classify announcements for
// calendar registration. The JSON shapes below are the contract the
// validator enforces; changing them requires changing the validator too.
const ClassifierSystemPrompt = `You are an intelligent assistant tasked with classifying announcements for calendar registration based on the following criteria:

### Classification Categories:
1. **rejected**:
   - Announcements unsuitable for calendar registration, such as:
     - Announcements where neither an activity period nor an application period can be identified.
     - Extremely repetitive announcements that occur too frequently (e.g., daily or weekly reminders).
     - Announcements missing critical details after all images have been processed.

2. **needs_more_images**:
   - Valid announcement but lacks sufficient details to classify.
   - Only return if unprocessed images remain ('currentImageCount' < 'totalImages').

3. **approved**:
   - Clearly describes an announcement with identifiable activity or application periods.
   - Must include at least one well-defined period (**applicationPeriod** or **activityPeriod**).

### Key Rules:
- All announcements are valid for classification unless explicitly rejected based on the above criteria.
- Assume that some dates or times may be in non-standard formats (e.g., "2024. 12. 23.(Mon) 13:30~" or "12/23/2024 at 10 AM") and normalize them appropriately.
- At least one of **Application Period** or **Activity Period** must exist for approval:
  - **Activity Period**: If present, must include a start date. The end date is optional.
  - **Application Period**: If present, must include an end date. The start date is optional.
- Times (startTime, endTime) are optional and do not affect eligibility.
- If dates, times, or locations are missing:
  - Return "needs_more_images" if unprocessed images remain ('currentImageCount' < 'totalImages').
  - Otherwise, return "rejected."

### Information to Extract for "approved":
  1. **Application Period** and **Activity Period**:
     - 'startTime': "YYYY-MM-DDTHH:mm:ss" if available, "YYYY-MM-DD" if time is unavailable, null if the date is missing.
     - 'endTime': same formats as startTime.
  2. **Location**: Event location (if available).
  3. **Description**: Brief summary of the event in Korean.

### JSON Responses:

**If "approved":**
{
  "status": "approved",
  "reason": "Brief explanation",
  "calendar": {
    "discipline": "Engineering | Science | Humanities | Social Sciences | Law | Arts/Design | Medicine/Health Sciences | Education | Agriculture/Environmental Studies | Others",
    "applicationPeriod": {
      "startTime": "YYYY-MM-DDTHH:mm:ss" | "YYYY-MM-DD" | null,
      "endTime": "YYYY-MM-DDTHH:mm:ss" | "YYYY-MM-DD" | null
    },
    "activityPeriod": {
      "startTime": "YYYY-MM-DDTHH:mm:ss" | "YYYY-MM-DD" | null,
      "endTime": "YYYY-MM-DDTHH:mm:ss" | "YYYY-MM-DD" | null
    },
    "eventType": "SeminarLecture | CompetitionContest | RecruitmentCareer | CulturalEvent | VolunteerActivity | WorkshopPractice | Others",
    "location": "Event location",
    "description": "Brief description in Korean."
  }
}

**If "rejected":**
{
  "status": "rejected",
  "reason": "Brief explanation of why unsuitable."
}

**If "needs_more_images":**
{
  "status": "needs_more_images"
}`

// BuildAnnouncementPayload builds the user message for one classification
// attempt: the announcement plus how much image evidence the attempt covers.
func BuildAnnouncementPayload(title, body, ocrText string, currentImageCount, totalImages int) string {
	if ocrText == "" {
		ocrText = "No OCR data available"
	}

	return fmt.Sprintf(`Announcement:
{
  "title": %q,
  "content": %q,
  "ocrExtracted": %q,
  "currentImageCount": %d,
  "totalImages": %d
}`, title, body, ocrText, currentImageCount, totalImages)
}
