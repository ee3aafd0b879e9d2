package dto

// PersonDetailsRequest carries the identity fields shared by the enquiry
// and admission intake forms.
type PersonDetailsRequest struct {
	FirstName                string `json:"first_name" validate:"required"`
	MiddleName               string `json:"middle_name"`
	LastName                 string `json:"last_name" validate:"required"`
	DateOfBirth              string `json:"date_of_birth" validate:"required,datetime=2006-01-02"`
	Gender                   string `json:"gender" validate:"required"`
	MaritalStatus            string `json:"marital_status" validate:"required"`
	MotherTongue             string `json:"mother_tongue" validate:"required"`
	AadharNumber             string `json:"aadhar_number" validate:"required"`
	CorrespondenceAddress    string `json:"correspondence_address" validate:"required"`
	City                     string `json:"city" validate:"required"`
	State                    string `json:"state" validate:"required"`
	District                 string `json:"district" validate:"required"`
	MobileNumber             string `json:"mobile_number" validate:"required"`
	AlternateMobileNumber    string `json:"alternate_mobile_number"`
	Category                 string `json:"category" validate:"required"`
	EducationalQualification string `json:"educational_qualification" validate:"required"`
}

// EnquiryCreateRequest is the enquiry intake payload.
type EnquiryCreateRequest struct {
	PersonDetailsRequest
	CourseName string `json:"course_name" validate:"required"`
	Timing     string `json:"timing" validate:"required"`
	HandledBy  string `json:"handled_by" validate:"required"`
}

// EnquiryResponse is one enquiry as surfaced over the API.
type EnquiryResponse struct {
	ID           uint   `json:"id"`
	StudentName  string `json:"student_name"`
	MobileNumber string `json:"mobile_number"`
	CourseName   string `json:"course_name"`
	Timing       string `json:"timing"`
	HandledBy    string `json:"handled_by"`
	CreatedAt    string `json:"created_at"`
}

// AdmissionCreateRequest is the admission intake payload.
type AdmissionCreateRequest struct {
	PersonDetailsRequest
	CourseName      string `json:"course_name" validate:"required"`
	Timing          string `json:"timing" validate:"required"`
	CertificateName string `json:"certificate_name" validate:"required"`
	ReferredBy      string `json:"referred_by"`
}

// AdmissionResponse is one admitted student as surfaced over the API.
type AdmissionResponse struct {
	ID              uint   `json:"id"`
	StudentName     string `json:"student_name"`
	MobileNumber    string `json:"mobile_number"`
	CourseName      string `json:"course_name"`
	Timing          string `json:"timing"`
	CertificateName string `json:"certificate_name"`
	ReferredBy      string `json:"referred_by"`
	AdmissionDate   string `json:"admission_date"`
}
